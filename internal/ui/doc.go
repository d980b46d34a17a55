// Package ui provides the terminal user interface for herder.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea's model-update-view loop. A single Model
// holds all interface state; every external fact (server status, model
// catalog, streamed install output) enters through a typed message, so
// Update is the only place state changes.
//
// # Package Structure
//
//   - app.go: Model, Init/Update/View, and the Run entry point
//   - messages.go: typed messages delivered to Update
//   - commands.go: tea.Cmd constructors that call the controller
//   - input_handlers.go: key routing for panes and overlays
//   - header.go: status bar and command bar
//   - models.go: models table and detail pane
//   - logs.go: activity log pane
//   - overlays.go: modal prompts, confirmations, details, help
//   - theme.go: color palettes and pre-built styles
//
// # Layout
//
//	┌────────────────────────────────────────────┐
//	│ herder  ● ON v0.3.6  Models: 4  dir ~/...  │  header
//	│ i:Install d:Delete Enter:Details ...       │  command bar
//	│ ┌── Models (4) ──┐ ┌───── Details ───────┐ │
//	│ │ NAME SIZE ...  │ │ phi3:3.8b           │ │  content
//	│ │ ...            │ │ ID / Size / Path    │ │
//	│ └────────────────┘ └─────────────────────┘ │
//	│ ┌─────────────────── Log ────────────────┐ │
//	│ │ [12:04:11] installing phi3:3.8b...     │ │  log pane
//	│ └────────────────────────────────────────┘ │
//	└────────────────────────────────────────────┘
//
// # Event Flow
//
//  1. Run() starts the Bubble Tea program in the alt screen
//  2. A tick refreshes the server snapshot from state.Store
//  3. User actions dispatch controller calls as tea.Cmds
//  4. Streamed pull output is drained one event per message, which keeps
//     log lines in the order the subprocess produced them
//  5. Context cancellation or q/ctrl+c shuts the program down
//
// # Overlays
//
// Modal overlays replace the whole frame while open: the install prompt
// (with recommended models), the models-folder prompt, delete and
// cleanup confirmations, the model card, and help. Overlay key handling
// runs before the global bindings.
package ui
