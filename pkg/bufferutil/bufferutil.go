// Package bufferutil converts between the byte buffers of elements
// transactions and the hex strings used by the TDEX protocol. Hashes and
// blinders are serialized in reverse byte order, like txids.
package bufferutil

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/vulpemventures/go-elements/elementsutil"
)

const (
	hashLen             = 32
	explicitAssetPrefix = 0x01
)

var ErrInvalidHashLength = errors.New("hash must be a 32-byte array")

// AssetHashFromBytes returns the hex asset hash of an explicit asset buffer.
// The first byte is the explicit/confidential prefix and it's dropped.
func AssetHashFromBytes(buffer []byte) string {
	if len(buffer) <= 1 {
		return ""
	}
	return TxIDFromBytes(buffer[1:])
}

// AssetHashToBytes returns the explicit asset buffer of the given hex asset
// hash, prefixed by 0x01.
func AssetHashToBytes(str string) ([]byte, error) {
	buffer, err := hashToBytes(str)
	if err != nil {
		return nil, fmt.Errorf("invalid asset %s: %w", str, err)
	}
	return append([]byte{explicitAssetPrefix}, buffer...), nil
}

// ValueFromBytes returns the amount of an explicit value buffer, or zero for
// a confidential one.
func ValueFromBytes(buffer []byte) uint64 {
	value, _ := elementsutil.ValueFromBytes(buffer)
	return value
}

func ValueToBytes(val uint64) ([]byte, error) {
	return elementsutil.ValueToBytes(val)
}

func TxIDFromBytes(buffer []byte) string {
	return hex.EncodeToString(elementsutil.ReverseBytes(buffer))
}

func TxIDToBytes(str string) ([]byte, error) {
	buffer, err := hashToBytes(str)
	if err != nil {
		return nil, fmt.Errorf("invalid txid %s: %w", str, err)
	}
	return buffer, nil
}

// BlinderFromBytes encodes a blinding factor the way the TDEX protocol
// discloses it.
func BlinderFromBytes(buffer []byte) string {
	return TxIDFromBytes(buffer)
}

func BlinderToBytes(str string) ([]byte, error) {
	buffer, err := hashToBytes(str)
	if err != nil {
		return nil, fmt.Errorf("invalid blinder: %w", err)
	}
	return buffer, nil
}

func hashToBytes(str string) ([]byte, error) {
	buffer, err := hex.DecodeString(str)
	if err != nil {
		return nil, err
	}
	if len(buffer) != hashLen {
		return nil, ErrInvalidHashLength
	}
	return elementsutil.ReverseBytes(buffer), nil
}
