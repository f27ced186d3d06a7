package glfwgo

// Hint names a window, framebuffer or context creation hint.
//
// Hints are process-wide state consulted by the next CreateWindow only;
// changing them never affects windows that already exist.
type Hint int32

// Window related hints. These are also window attributes for GetWindowAttrib.
const (
	Focused                Hint = 0x00020001
	Iconified              Hint = 0x00020002
	Resizable              Hint = 0x00020003
	Visible                Hint = 0x00020004
	Decorated              Hint = 0x00020005
	AutoIconify            Hint = 0x00020006
	Floating               Hint = 0x00020007
	Maximized              Hint = 0x00020008
	CenterCursor           Hint = 0x00020009
	TransparentFramebuffer Hint = 0x0002000A
	Hovered                Hint = 0x0002000B
	FocusOnShow            Hint = 0x0002000C
)

// Framebuffer related hints.
const (
	RedBits        Hint = 0x00021001
	GreenBits      Hint = 0x00021002
	BlueBits       Hint = 0x00021003
	AlphaBits      Hint = 0x00021004
	DepthBits      Hint = 0x00021005
	StencilBits    Hint = 0x00021006
	AccumRedBits   Hint = 0x00021007
	AccumGreenBits Hint = 0x00021008
	AccumBlueBits  Hint = 0x00021009
	AccumAlphaBits Hint = 0x0002100A
	AuxBuffers     Hint = 0x0002100B
	Stereo         Hint = 0x0002100C
	Samples        Hint = 0x0002100D
	SRGBCapable    Hint = 0x0002100E
	RefreshRate    Hint = 0x0002100F
	DoubleBuffer   Hint = 0x00021010
)

// Context related hints.
const (
	ClientAPI               Hint = 0x00022001
	ContextVersionMajor     Hint = 0x00022002
	ContextVersionMinor     Hint = 0x00022003
	ContextRevision         Hint = 0x00022004
	ContextRobustness       Hint = 0x00022005
	OpenGLForwardCompatible Hint = 0x00022006
	OpenGLDebugContext      Hint = 0x00022007
	OpenGLProfile           Hint = 0x00022008
	ContextReleaseBehavior  Hint = 0x00022009
	ContextNoError          Hint = 0x0002200A
	ContextCreationAPI      Hint = 0x0002200B
	ScaleToMonitor          Hint = 0x0002200C
)

// String hints for WindowHintString (GLFW 3.3).
const (
	CocoaFrameName  Hint = 0x00023002
	X11ClassName    Hint = 0x00024001
	X11InstanceName Hint = 0x00024002
)

// Hint values.
const (
	True     = 1
	False    = 0
	DontCare = -1

	NoAPI       = 0
	OpenGLAPI   = 0x00030001
	OpenGLESAPI = 0x00030002

	NoRobustness        = 0
	NoResetNotification = 0x00031001
	LoseContextOnReset  = 0x00031002

	OpenGLAnyProfile    = 0
	OpenGLCoreProfile   = 0x00032001
	OpenGLCompatProfile = 0x00032002

	AnyReleaseBehavior   = 0
	ReleaseBehaviorFlush = 0x00035001
	ReleaseBehaviorNone  = 0x00035002

	NativeContextAPI = 0x00036001
	EGLContextAPI    = 0x00036002
	OSMesaContextAPI = 0x00036003
)

// InitHint names a library initialization hint for InitHint (GLFW 3.3).
type InitHint int32

const (
	JoystickHatButtons  InitHint = 0x00050001
	CocoaChdirResources InitHint = 0x00051001
	CocoaMenubar        InitHint = 0x00051002
)

// Bool converts a Go bool into a GLFW hint value.
func Bool(b bool) int {
	if b {
		return True
	}
	return False
}
