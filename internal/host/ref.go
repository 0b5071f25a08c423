package host

import (
	"fmt"
	"strconv"
	"strings"
)

// AnchorRef builds the sub-reference string for an anchor index under a face
// identity token. The format is token + "/" + index.
func AnchorRef(faceToken string, index int) string {
	return faceToken + "/" + strconv.Itoa(index)
}

// ParseAnchorRef splits a sub-reference string back into its face token and
// anchor index. The token itself may contain slashes; only the final path
// element is the index.
func ParseAnchorRef(ref string) (faceToken string, index int, err error) {
	i := strings.LastIndex(ref, "/")
	if i < 0 {
		return "", 0, fmt.Errorf("anchor ref %q has no index separator", ref)
	}
	idx, err := strconv.Atoi(ref[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("anchor ref %q has non-integer index: %w", ref, err)
	}
	return ref[:i], idx, nil
}
