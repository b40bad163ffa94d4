package svg

// Units is the coordinate system of clip paths, masks,
// filters and gradients.
type Units string

const (
	UserSpaceOnUse    Units = "userSpaceOnUse"
	ObjectBoundingBox Units = "objectBoundingBox"
)

// Align is the alignment part of preserveAspectRatio.
type Align string

const (
	AlignNone     Align = "none"
	AlignXMinYMin Align = "xMinYMin"
	AlignXMidYMin Align = "xMidYMin"
	AlignXMaxYMin Align = "xMaxYMin"
	AlignXMinYMid Align = "xMinYMid"
	AlignXMidYMid Align = "xMidYMid"
	AlignXMaxYMid Align = "xMaxYMid"
	AlignXMinYMax Align = "xMinYMax"
	AlignXMidYMax Align = "xMidYMax"
	AlignXMaxYMax Align = "xMaxYMax"
)

type MeetOrSlice string

const (
	Meet  MeetOrSlice = "meet"
	Slice MeetOrSlice = "slice"
)

// In is a standard input of filter primitives.
type In string

const (
	InSourceGraphic   In = "SourceGraphic"
	InSourceAlpha     In = "SourceAlpha"
	InBackgroundImage In = "BackgroundImage"
	InBackgroundAlpha In = "BackgroundAlpha"
	InFillPaint       In = "FillPaint"
	InStrokePaint     In = "StrokePaint"
)

// BlendMode is the mode of feBlend.
type BlendMode string

const (
	BlendNormal   BlendMode = "normal"
	BlendMultiply BlendMode = "multiply"
	BlendScreen   BlendMode = "screen"
	BlendDarken   BlendMode = "darken"
	BlendLighten  BlendMode = "lighten"
)

// ColorMatrixType is the type of feColorMatrix.
type ColorMatrixType string

const (
	ColorMatrix           ColorMatrixType = "matrix"
	ColorSaturate         ColorMatrixType = "saturate"
	ColorHueRotate        ColorMatrixType = "hueRotate"
	ColorLuminanceToAlpha ColorMatrixType = "luminanceToAlpha"
)

// Channel selects the transfer functions of feComponentTransfer.
// A channel made of several letters adds one function per letter.
type Channel string

const (
	ChannelR     Channel = "R"
	ChannelG     Channel = "G"
	ChannelB     Channel = "B"
	ChannelA     Channel = "A"
	ChannelsRGB  Channel = "RGB"
	ChannelsRGBA Channel = "RGBA"
)

// TransferType is the type of a feFuncX element.
type TransferType string

const (
	TransferIdentity TransferType = "identity"
	TransferTable    TransferType = "table"
	TransferDiscrete TransferType = "discrete"
	TransferLinear   TransferType = "linear"
	TransferGamma    TransferType = "gamma"
)

// MorphologyOperator is the operator of feMorphology.
type MorphologyOperator string

const (
	Erode  MorphologyOperator = "erode"
	Dilate MorphologyOperator = "dilate"
)
