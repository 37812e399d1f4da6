package main

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
)

func writeImage(format string, img image.Image, name string, quality int) error {
	if format == "jpg" {
		return writeJPGImage(img, name, quality)
	}

	return writePNGImage(img, name)
}

func writeJPGImage(img image.Image, name string, quality int) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}

	defer fd.Close()
	return jpeg.Encode(fd, img, &jpeg.Options{Quality: quality})
}

func writePNGImage(img image.Image, name string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}

	defer fd.Close()
	return png.Encode(fd, img)
}
