package recording

import (
	"image/color"

	"github.com/gogpu/glyphmask"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save transform and clip
	CmdSaveLayer                    // Save and start a layer
	CmdRestore                      // Restore previous state
	CmdTranslate                    // Translate the transform
	CmdConcat                       // Concatenate a matrix
	CmdClipPath                     // Intersect the clip with a path

	// Drawing commands
	CmdDrawPath  // Fill a path
	CmdDrawPaint // Fill the clip
	CmdDrawMask  // Draw a mask
	CmdClear     // Replace the layer contents
)

var commandTypeNames = [...]string{
	CmdSave:      "Save",
	CmdSaveLayer: "SaveLayer",
	CmdRestore:   "Restore",
	CmdTranslate: "Translate",
	CmdConcat:    "Concat",
	CmdClipPath:  "ClipPath",
	CmdDrawPath:  "DrawPath",
	CmdDrawPaint: "DrawPaint",
	CmdDrawMask:  "DrawMask",
	CmdClear:     "Clear",
}

// String returns the command name.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all command types.
type Command interface {
	Type() CommandType
}

// SaveCommand saves the transform and clip.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// SaveLayerCommand saves and starts a layer composited with Mode.
type SaveLayerCommand struct {
	Mode glyphmask.BlendMode
}

// Type implements Command.
func (SaveLayerCommand) Type() CommandType { return CmdSaveLayer }

// RestoreCommand restores the previously saved state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand translates the transform.
type TranslateCommand struct {
	DX, DY float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// ConcatCommand concatenates Matrix onto the transform.
type ConcatCommand struct {
	Matrix glyphmask.Matrix
}

// Type implements Command.
func (ConcatCommand) Type() CommandType { return CmdConcat }

// ClipPathCommand intersects the clip with Path.
type ClipPathCommand struct {
	Path      *glyphmask.Path
	AntiAlias bool
}

// Type implements Command.
func (ClipPathCommand) Type() CommandType { return CmdClipPath }

// DrawPathCommand fills Path with Paint.
type DrawPathCommand struct {
	Path  *glyphmask.Path
	Paint glyphmask.Paint
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// DrawPaintCommand fills the clip with Paint.
type DrawPaintCommand struct {
	Paint glyphmask.Paint
}

// Type implements Command.
func (DrawPaintCommand) Type() CommandType { return CmdDrawPaint }

// DrawMaskCommand draws Mask with Filter.
type DrawMaskCommand struct {
	Mask   *glyphmask.Mask
	Filter glyphmask.FilterQuality
}

// Type implements Command.
func (DrawMaskCommand) Type() CommandType { return CmdDrawMask }

// ClearCommand replaces the layer contents with Color.
type ClearCommand struct {
	Color color.NRGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }
