package cmsis

// Descriptor is a flat description of one defined code, for listings.
type Descriptor struct {
	Category string `json:"category" yaml:"category"`
	Name     string `json:"name" yaml:"name"`
	Code     int64  `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
}

// Descriptors lists every defined code of cat in ascending order. Flags
// codes are listed as their unsigned 32-bit values.
func Descriptors(cat Category) []Descriptor {
	t, ok := cat.(*table)
	if !ok {
		return nil
	}
	out := make([]Descriptor, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, Descriptor{
			Category: t.name,
			Name:     e.name,
			Code:     e.key,
			Message:  e.msg,
		})
	}
	return out
}
