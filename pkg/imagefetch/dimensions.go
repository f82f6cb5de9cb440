package imagefetch

import (
	"bytes"
	"image"

	// Registered for image.DecodeConfig; the only two formats the print
	// pipeline accepts.
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
)

// Dimensions reads the intrinsic pixel size from the image header without
// decoding the full bitmap.
func (i Image) Dimensions() (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(i.Data))
	if err != nil {
		return 0, 0, errors.Wrap(err, "decode image config")
	}
	return cfg.Width, cfg.Height, nil
}
