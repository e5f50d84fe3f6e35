// Package errors provides the structured error type used across fiender.
//
// Every error carries a Code, a message, an optional cause and optional
// metadata. The codes that matter to callers are:
//   - Transport: the HTTP request never produced a response
//   - Remote: the API answered with a non-success status
//   - SchemaMismatch: the body did not decode into the expected shape
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.Remote(resp.StatusCode, url)
//	err := errors.SchemaMismatchf("actions: unexpected %s", shape).
//	    WithMeta("field", "actions")
//
// Wrapping errors:
//
//	if err := json.Unmarshal(body, &page); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeSchemaMismatch, "failed to decode page")
//	}
//
// # Error Checking
//
//	if errors.IsRemote(err) {
//	    status := errors.Status(err)
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// None of these errors is retried anywhere. They propagate unchanged to the
// command boundary, which prints them and exits non-zero.
package errors
