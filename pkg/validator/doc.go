// Package validator builds declarative validation from small Rule values.
//
// Each rule pairs a Check with the ValidationError reported when it fails.
// Apply runs every rule and collects the failures into ValidationErrors:
//
//	err := validator.Apply(
//		validator.Present("message", req.Message),
//		validator.MaxRunes("category", req.Category, 32),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		msg := verrs.Get("message")
//	}
//
// Rules hold no state, so they are safe to build and run concurrently.
package validator
