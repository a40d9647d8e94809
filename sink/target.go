package sink

// Identifies the kind of surface a [Target] points to.
type TargetKind uint8
const (
	TargetScreen    TargetKind = iota // default output surface
	TargetOffscreen                   // an offscreen image
)

// A render target for sinks that support switching surfaces. The
// zero value targets the screen.
type Target struct {
	kind TargetKind
	image Image
}

// Returns a target for the sink's default output surface.
func ScreenTarget() Target { return Target{} }

// Returns a target for the given offscreen image. A nil image
// is equivalent to [ScreenTarget]().
func OffscreenTarget(img Image) Target {
	if img == nil { return Target{} }
	return Target{ kind: TargetOffscreen, image: img }
}

// Returns the kind of surface the target points to.
func (self Target) Kind() TargetKind { return self.kind }

// Returns whether the target is the default output surface.
func (self Target) IsScreen() bool { return self.kind == TargetScreen }

// Returns the offscreen image, if any.
func (self Target) Image() (Image, bool) {
	return self.image, self.kind == TargetOffscreen
}

func (self TargetKind) String() string {
	switch self {
	case TargetScreen: return "screen"
	case TargetOffscreen: return "offscreen"
	default:
		return "unknown"
	}
}
