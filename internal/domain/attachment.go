package domain

import (
	"fmt"
	"slices"
)

// Attachment is one encoded image. Data holds the encoded bytes and is
// base64 in JSON.
type Attachment struct {
	MIME string `json:"mime"`
	Data []byte `json:"data"`
}

// AttachmentSet is an ordered list of images, in capture order.
type AttachmentSet []Attachment

// Append returns the set with a appended.
func (s AttachmentSet) Append(a Attachment) AttachmentSet {
	return append(s, a)
}

// Remove returns the set without the element at index i.
func (s AttachmentSet) Remove(i int) (AttachmentSet, error) {
	if i < 0 || i >= len(s) {
		return s, fmt.Errorf("index %d of %d: %w", i, len(s), ErrIndexOutOfRange)
	}
	return slices.Delete(slices.Clone(s), i, i+1), nil
}

// Clone returns a snapshot copy that shares no backing storage with s.
func (s AttachmentSet) Clone() AttachmentSet {
	if len(s) == 0 {
		return nil
	}
	out := make(AttachmentSet, len(s))
	for i, a := range s {
		out[i] = Attachment{MIME: a.MIME, Data: slices.Clone(a.Data)}
	}
	return out
}

// Size returns the total encoded byte count.
func (s AttachmentSet) Size() int {
	var n int
	for _, a := range s {
		n += len(a.Data)
	}
	return n
}
