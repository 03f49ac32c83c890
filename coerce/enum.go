package coerce

import "strconv"

// Anchor names the corner (or center) a visual element is pinned to.
type Anchor string

const (
	AnchorTopLeft     Anchor = "tl"
	AnchorTopRight    Anchor = "tr"
	AnchorBottomLeft  Anchor = "bl"
	AnchorBottomRight Anchor = "br"
	AnchorCenter      Anchor = "ce"
)

// ParseAnchor validates a member of the closed anchor set.
func ParseAnchor(val string) (Anchor, error) {
	switch a := Anchor(val); a {
	case AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight, AnchorCenter:
		return a, nil
	}
	return "", failf(CodeInvalidChoice, val, "anchor must be: tl tr bl br ce")
}

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign validates a member of the closed alignment set.
func ParseAlign(val string) (Align, error) {
	switch a := Align(val); a {
	case AlignLeft, AlignCenter, AlignRight:
		return a, nil
	}
	return "", failf(CodeInvalidChoice, val, "align must be 'left', 'right', or 'center'")
}

// StreamSpec selects audio streams: a specific index, or every stream.
type StreamSpec struct {
	all   bool
	index int
}

// AllStreams selects every stream.
func AllStreams() StreamSpec { return StreamSpec{all: true} }

// StreamIndex selects the stream at index n.
func StreamIndex(n int) StreamSpec { return StreamSpec{index: n} }

// IsAll reports whether every stream is selected.
func (s StreamSpec) IsAll() bool { return s.all }

// Index returns the selected stream index. ok is false when every stream
// is selected.
func (s StreamSpec) Index() (int, bool) { return s.index, !s.all }

func (s StreamSpec) String() string {
	if s.all {
		return "all"
	}
	return strconv.Itoa(s.index)
}

// ParseStream coerces a stream selector: the literal "all" or a natural
// stream index.
func ParseStream(val string) (StreamSpec, error) {
	if val == "all" {
		return AllStreams(), nil
	}
	n, err := Natural(val)
	if err != nil {
		return StreamSpec{}, err
	}
	return StreamIndex(n), nil
}

// SourceRef points at an input: a positive 1-based index into the input
// list, or a file path. Source never fails; anything that is not a
// positive integer is taken as a path.
type SourceRef struct {
	index   int
	path    string
	byIndex bool
}

// Source coerces an input reference.
func Source(val string) SourceRef {
	if n, err := strconv.Atoi(val); err == nil && n > 0 {
		return SourceRef{index: n, byIndex: true}
	}
	return SourceRef{path: val}
}

// Index returns the input index. ok is false for path references.
func (s SourceRef) Index() (int, bool) { return s.index, s.byIndex }

// Path returns the file path. ok is false for index references.
func (s SourceRef) Path() (string, bool) { return s.path, !s.byIndex }

func (s SourceRef) String() string {
	if s.byIndex {
		return strconv.Itoa(s.index)
	}
	return s.path
}
