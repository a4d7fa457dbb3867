// Package viz renders Floquet parameters and numerical checks in the
// terminal.
//
//   - [RenderParams], [RenderCheck]: styled static output
//   - [LossChart]: ASCII chart of Gram-Schmidt orthonormality loss
//   - [RunExplorer]: interactive Bubble Tea view for resizing a problem
//
// # Key Bindings
//
//	+/-  - change dim
//	[/]  - change nz by two (nz stays odd)
//	q    - quit
package viz
