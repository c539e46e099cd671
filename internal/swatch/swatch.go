// Package swatch renders a turntable of a coloured cube, one frame per
// rotation step, to check transform conventions by eye.
package swatch

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mathlibrary/internal/config"
	"mathlibrary/internal/encode"
	"mathlibrary/internal/postprocess"
	"mathlibrary/internal/raster"
	"mathlibrary/mathutil"
)

// Frame is one rendered turntable step.
type Frame struct {
	Index      int
	AngleDeg   float32
	Image      *image.NRGBA
	Digest     uint64
	OutputPath string
}

// FrameAngle returns the Y rotation in degrees of frame i out of n.
func FrameAngle(i, n int) float32 {
	return 360 * float32(i) / float32(n)
}

// Model builds the cube transform for a turntable angle: tilt about X first,
// then spin about Y.
func Model(angleDeg, tiltDeg float32) mathutil.Mat4 {
	spin := mathutil.Mat4RotY(mathutil.DegToRad(angleDeg))
	tilt := mathutil.Mat4RotX(mathutil.DegToRad(tiltDeg))
	return spin.Mul(tilt)
}

// RenderFrame draws frame i of cfg.Frames at cfg.Size, supersampled.
func RenderFrame(cfg config.Config, i int) Frame {
	renderSize := cfg.Size * cfg.Supersample
	angle := FrameAngle(i, cfg.Frames)

	fb := raster.NewFrameBuffer(renderSize, renderSize)
	lc := raster.DefaultLightConfig()
	raster.Render(fb, raster.Cube(0.5), Model(angle, cfg.TiltDegrees), raster.Viewport(renderSize, cfg.Span), &lc)

	img := fb.Image()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Size)
	}

	return Frame{
		Index:    i,
		AngleDeg: angle,
		Image:    img,
		Digest:   fb.Digest(),
	}
}

// Run renders and writes every frame using cfg.Workers goroutines.
// The first error cancels the remaining frames.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) ([]Frame, error) {
	format, err := encode.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, cfg.Frames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Frames; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f := RenderFrame(cfg, i)
			f.OutputPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d%s", i, format.Ext()))
			if err := encode.WriteFile(f.OutputPath, f.Image, format); err != nil {
				return fmt.Errorf("swatch: frame %d: %w", i, err)
			}

			log.Debug("frame written",
				zap.Int("frame", i),
				zap.Float32("angle_deg", f.AngleDeg),
				zap.String("path", f.OutputPath),
				zap.String("digest", fmt.Sprintf("%016x", f.Digest)),
			)
			frames[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}
