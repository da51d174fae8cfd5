// Package result provides the fallible-value companion type Result[T, E]:
// either a success value T or a failure payload E, never both.
//
// Highlights:
// - Success/Fail: construct Result[T, E]
// - Try: adapt a conventional (T, error) return
// - Result/Err/IsSuccess/IsFail: query the variant and read its payload
// - Map/MapErr/Switch: transform either side
// - Finally: reduce to a concrete value via success/failure handlers
// - Unit: the no-payload success type used for Fallible interop
//
// Every constructed value carries a uuid and a UTC creation time for
// tracing. They identify the value, not its contents: Equal ignores them.
package result
