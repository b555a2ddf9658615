//go:build !unix && !windows

package leapsec

// DefaultSource returns Unavailable, there is no leap second database here.
func DefaultSource() Source {
	return Unavailable{}
}
