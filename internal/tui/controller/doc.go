// Package controller drives the kubeview dashboard.
//
// The terminal UI follows a Model-View-Controller split on top of Bubble Tea:
//
//   - Model (internal/tui/model): state, key bindings, prompt flows and the
//     commands that call the cluster facade off the event loop
//   - View (internal/tui/view): a pure projection of the model into the
//     header, three table panels, command bar, status line and overlays
//   - Controller (this package): turns key presses and command results into
//     model updates
//
// # Operations
//
// Only one cluster operation runs at a time. While one is in flight the model
// is Busy and refresh, create and reload keys are refused with a warning;
// quit, help, focus and scrolling keep working.
//
// A create command opens a prompt flow. Enter answers the current step, esc or
// an empty answer abandons the flow without touching the cluster. Once every
// step is answered a PromptCompletedMsg triggers exactly one facade call. On
// success the status line reports it and the tables are re-listed; on failure
// an error dialog is shown and the tables are left alone.
//
// A failed refresh keeps the previous rows and reports the error on the
// status line until the next successful refresh.
package controller
