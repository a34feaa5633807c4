package faults

// DetailParam is the details key identifying the parameter that failed
// validation.
const DetailParam = "param"

// RequireParams checks that params is a map[string]any carrying a
// non-nil value for every required name.
//
// A nil or non-map params fails with VALIDATION_INVALID_FORMAT; the
// input is never coerced. A missing or nil field fails with
// VALIDATION_MISSING_PARAM naming the first missing parameter in
// required order. On success there is no side effect.
func RequireParams(params any, required ...string) error {
	m, ok := params.(map[string]any)
	if !ok || m == nil {
		return New(Validation, "params must be an object").
			WithCode(CodeValidationInvalidFormat)
	}
	for _, name := range required {
		v, present := m[name]
		if !present || v == nil {
			return Newf(Validation, "missing required parameter: %s", name).
				WithCode(CodeValidationMissingParam).
				WithDetail(DetailParam, name)
		}
	}
	return nil
}
