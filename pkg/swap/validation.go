package swap

// compareMessagesAndTransaction checks that the transaction of the request
// can cover the amount_p and pays amount_r of asset_r. If an accept message
// is given, it also checks that it pairs with the request and that the
// accepted transaction lets both parties receive what they agreed to.
func compareMessagesAndTransaction(request *SwapRequest, accept *SwapAccept) error {
	if request == nil {
		return ErrNilRequest
	}

	reqTx, err := parseSwapTx(request.Transaction)
	if err != nil {
		return err
	}
	fees := newFeeModel(reqTx.version, request)

	totalP, err := countUtxos(
		reqTx, request.AssetP, request.InputBlindingKeys, request.UnblindedInputs,
	)
	if err != nil {
		return err
	}
	if totalP < fees.amountToCover() {
		return validationErr(
			"cumulative utxos count is not enough to cover SwapRequest.amount_p",
		)
	}

	amountToReceive, err := fees.amountToReceive()
	if err != nil {
		return err
	}
	outputRFound, err := outputFoundInTransaction(
		reqTx.outputs, amountToReceive, request.AssetR, request.OutputBlindingKeys,
	)
	if err != nil {
		return err
	}
	if !outputRFound {
		return validationErr(
			"either SwapRequest.amount_r or SwapRequest.asset_r do not match the provided transaction",
		)
	}

	if accept == nil {
		return nil
	}

	if request.Id != accept.RequestId {
		return validationErr(
			"id mismatch: SwapRequest.id and SwapAccept.request_id are not the same",
		)
	}

	acceptTx, err := parseSwapTx(accept.Transaction)
	if err != nil {
		return err
	}
	if acceptTx.version != reqTx.version {
		return ErrVersionMismatch
	}

	inKeys := mergeKeys(request.InputBlindingKeys, accept.InputBlindingKeys)
	outKeys := mergeKeys(request.OutputBlindingKeys, accept.OutputBlindingKeys)
	unblindedIns := append(
		append([]UnblindedInput{}, request.UnblindedInputs...),
		accept.UnblindedInputs...,
	)

	totalR, err := countUtxos(acceptTx, request.AssetR, inKeys, unblindedIns)
	if err != nil {
		return err
	}
	if totalR < request.AmountR {
		return validationErr(
			"cumulative utxos count is not enough to cover SwapRequest.amount_r",
		)
	}

	outputPFound := false
	for _, amount := range fees.amountsToDeliver() {
		outputPFound, err = outputFoundInTransaction(
			acceptTx.outputs, amount, request.AssetP, outKeys,
		)
		if err != nil {
			return err
		}
		if outputPFound {
			break
		}
	}
	if !outputPFound {
		return validationErr(
			"either SwapRequest.amount_p or SwapRequest.asset_p do not match the provided transaction",
		)
	}

	outputRFound, err = outputFoundInTransaction(
		acceptTx.outputs, amountToReceive, request.AssetR, outKeys,
	)
	if err != nil {
		return err
	}
	if !outputRFound {
		return validationErr(
			"SwapAccept.transaction does not pay SwapRequest.amount_r of SwapRequest.asset_r",
		)
	}

	return nil
}

// outputFoundInTransaction returns whether any of the given outputs pays
// value of asset. Confidential outputs are unblinded with the key found for
// their script, the lack of such key is an error.
func outputFoundInTransaction(
	outputs []swapOutput, value uint64, asset string,
	outBlindKeys map[string][]byte,
) (bool, error) {
	for _, out := range outputs {
		if out.revealed {
			if out.value == value && out.asset == asset {
				return true, nil
			}
			continue
		}

		script := out.script()
		blindKey, ok := outBlindKeys[script]
		if !ok {
			return false, validationErr("no blinding private key for script: %s", script)
		}
		unblinded, ok := unblindOutput(out.out, blindKey)
		if !ok {
			return false, validationErr("unable to unblind output with script: %s", script)
		}
		if unblinded.value == value && unblinded.asset == asset {
			return true, nil
		}
	}
	return false, nil
}

// countUtxos sums the values of the inputs of the given asset. Confidential
// prevouts are revealed either with blinding keys (v1) or with the disclosed
// unblinded inputs (v2). Inputs without a witness prevout can't be verified
// and do not contribute to the sum.
func countUtxos(
	tx *swapTx, asset string,
	inBlindKeys map[string][]byte, unblindedIns []UnblindedInput,
) (uint64, error) {
	disclosed := make(map[uint32]UnblindedInput)
	for _, in := range unblindedIns {
		if int(in.Index) >= len(tx.prevouts) {
			return 0, validationErr("unblinded input index %d out of range", in.Index)
		}
		disclosed[in.Index] = in
	}

	var amount uint64
	for i, prevout := range tx.prevouts {
		if prevout == nil {
			continue
		}

		out := explicitOrBlinded(prevout)
		if out.revealed {
			if out.asset == asset {
				amount += out.value
			}
			continue
		}

		if tx.version == V2 {
			in, ok := disclosed[uint32(i)]
			if !ok {
				continue
			}
			if in.Asset == asset {
				amount += in.Amount
			}
			continue
		}

		script := out.script()
		blindKey, ok := inBlindKeys[script]
		if !ok {
			return 0, validationErr("no blinding private key for script: %s", script)
		}
		unblinded, ok := unblindOutput(prevout, blindKey)
		if !ok {
			return 0, validationErr("unable to unblind input with script: %s", script)
		}
		if unblinded.asset == asset {
			amount += unblinded.value
		}
	}

	return amount, nil
}

func mergeKeys(maps ...map[string][]byte) map[string][]byte {
	merged := make(map[string][]byte)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// feeModel adjusts the amounts of a request to the fee paid to the
// responder. V2 requests declare the fee explicitly: if paid in asset_p it
// is added to what the proposer spends, if paid in asset_r it is subtracted
// from what the proposer receives. V1 amounts are always fee inclusive.
type feeModel struct {
	request *SwapRequest
	active  bool
}

func newFeeModel(v Version, request *SwapRequest) feeModel {
	return feeModel{request, v == V2 && request.FeeAmount > 0}
}

func (f feeModel) amountToCover() uint64 {
	if f.active && f.request.FeeAsset == f.request.AssetP {
		return f.request.AmountP + f.request.FeeAmount
	}
	return f.request.AmountP
}

func (f feeModel) amountToReceive() (uint64, error) {
	if f.active && f.request.FeeAsset == f.request.AssetR {
		if f.request.FeeAmount > f.request.AmountR {
			return 0, ErrUnexpectedFeeAmount
		}
		return f.request.AmountR - f.request.FeeAmount, nil
	}
	return f.request.AmountR, nil
}

// amountsToDeliver returns the amounts of asset_p the responder can
// receive: the fee may be collected in the same output or in a separate
// one.
func (f feeModel) amountsToDeliver() []uint64 {
	if f.active && f.request.FeeAsset == f.request.AssetP {
		return []uint64{f.request.AmountP, f.request.AmountP + f.request.FeeAmount}
	}
	return []uint64{f.request.AmountP}
}
