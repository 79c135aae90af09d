package ai

import "bytes"

type imageFormat int

const (
	formatUnknown imageFormat = iota
	formatJPEG
	formatPNG
	formatHEIC
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// HEIF brand codes that all decode with HEVC tooling the pipeline does not
// carry. Anything in this set gets the conversion guidance instead of a
// doomed inference call.
var heicBrands = [][]byte{
	[]byte("heic"), []byte("heix"), []byte("hevc"), []byte("hevx"),
	[]byte("heim"), []byte("heis"), []byte("hevm"), []byte("hevs"),
	[]byte("mif1"), []byte("msf1"),
}

// detectImageFormat classifies the buffer by magic bytes alone; it never
// decodes the image.
func detectImageFormat(data []byte) imageFormat {
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8 {
		return formatJPEG
	}
	if len(data) >= 8 && bytes.Equal(data[:8], pngSignature) {
		return formatPNG
	}
	if len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp")) {
		brand := data[8:12]
		for _, b := range heicBrands {
			if bytes.Equal(brand, b) {
				return formatHEIC
			}
		}
	}
	return formatUnknown
}

func (f imageFormat) mimeType() string {
	switch f {
	case formatJPEG:
		return "image/jpeg"
	case formatPNG:
		return "image/png"
	case formatHEIC:
		return "image/heic"
	}
	return "application/octet-stream"
}
