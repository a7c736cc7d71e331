package segments

import (
	"fmt"
	"strconv"

	"github.com/bdewgo/automapper/edifact"
)

// ErrWrongTag is returned by a ParseXXX function when the given segment's
// tag does not match the segment type being parsed.
type ErrWrongTag struct {
	Want, Got string
}

func (e *ErrWrongTag) Error() string {
	return fmt.Sprintf("segments: expected %s, got %s", e.Want, e.Got)
}

func requireTag(seg edifact.Segment, tag string) error {
	if seg.Tag != tag {
		return &ErrWrongTag{Want: tag, Got: seg.Tag}
	}
	return nil
}

// atoi parses s as an int, returning 0 for an empty string rather than an
// error — interchange/message counts are frequently absent on hand-built
// fixtures and a missing count is not itself malformed framing.
func atoi(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
