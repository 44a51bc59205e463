package filter

// ChainedFunction is one step of a stepwise function pipeline. Element 0 of
// a chain is applied first (innermost call); the last element wraps the
// final result.
type ChainedFunction struct {
	FunctionName   string           `json:"functionName"`
	AdditionalArgs []ArithmeticTerm `json:"additionalArgs,omitempty"`
}

// DecomposeChain unfolds a nested function call into a flat, innermost-first
// chain plus the source operand the pipeline starts from. It walks from the
// outermost call inward, pushing each call onto the front of the chain.
func DecomposeChain(functionName string, args []ArithmeticTerm) ([]ChainedFunction, ArithmeticTerm) {
	var chain []ChainedFunction
	name := functionName
	current := args
	for {
		var source ArithmeticTerm
		var rest []ArithmeticTerm
		if len(current) > 0 {
			source = current[0]
			rest = current[1:]
		}
		chain = append([]ChainedFunction{{FunctionName: name, AdditionalArgs: rest}}, chain...)

		nested, ok := source.(*FunctionOperand)
		if !ok {
			return chain, source
		}
		name = nested.Name
		current = nested.Args
	}
}

// ComposeChain is the inverse of DecomposeChain: it folds the chain
// left-to-right, each entry wrapping the previous result as its first
// argument. Entries without a function name are skipped. With no valid
// entries and a populated field source, the source passes through bare,
// which supports the "field only, no function" editing mode.
func ComposeChain(chain []ChainedFunction, source ArithmeticTerm) ArithmeticTerm {
	valid := make([]ChainedFunction, 0, len(chain))
	for _, entry := range chain {
		if entry.FunctionName != "" {
			valid = append(valid, entry)
		}
	}
	if len(valid) == 0 {
		if field, ok := source.(*FieldOperand); ok && field.Field != "" {
			return field
		}
		return source
	}

	result := source
	for _, entry := range valid {
		args := make([]ArithmeticTerm, 0, len(entry.AdditionalArgs)+1)
		if result != nil {
			args = append(args, result)
		}
		args = append(args, entry.AdditionalArgs...)
		result = &FunctionOperand{Name: entry.FunctionName, Args: args}
	}
	return result
}

// BuildWaterfall compiles a first-non-empty-value selection over the given
// slots into a coalesce call. Unpopulated slots are dropped; a single
// surviving slot passes through without the wrapping call.
func BuildWaterfall(slots []ArithmeticTerm) ArithmeticTerm {
	complete := make([]ArithmeticTerm, 0, len(slots))
	for _, slot := range slots {
		if slot != nil && termComplete(slot) {
			complete = append(complete, slot)
		}
	}
	switch len(complete) {
	case 0:
		return nil
	case 1:
		return complete[0]
	default:
		return &FunctionOperand{Name: "coalesce", Args: complete}
	}
}

// BuildConcat compiles string concatenation of the slots, with an optional
// post-processing chain applied on top of the concat call.
func BuildConcat(slots []ArithmeticTerm, post []ChainedFunction) ArithmeticTerm {
	complete := make([]ArithmeticTerm, 0, len(slots))
	for _, slot := range slots {
		if slot != nil && termComplete(slot) {
			complete = append(complete, slot)
		}
	}
	if len(complete) == 0 {
		return nil
	}
	var result ArithmeticTerm = &FunctionOperand{Name: "concat", Args: complete}
	if len(post) > 0 {
		result = ComposeChain(post, result)
	}
	return result
}
