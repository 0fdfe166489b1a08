package main

import (
	"encoding/binary"
	"os"
)

// DDSHeader represents the DDS file header
type DDSHeader struct {
	Magic            uint32
	Size             uint32
	Flags            uint32
	Height           uint32
	Width            uint32
	PitchOrLinear    uint32
	Depth            uint32
	MipMapCount      uint32
	Reserved1        [11]uint32
	PixelFormatSize  uint32
	PixelFormatFlags uint32
	FourCC           uint32
	RGBBitCount      uint32
	RBitMask         uint32
	GBitMask         uint32
	BBitMask         uint32
	ABitMask         uint32
	Caps             uint32
	Caps2            uint32
	Caps3            uint32
	Caps4            uint32
	Reserved2        uint32
}

const (
	ddsMagic        = 0x20534444 // "DDS "
	ddsdCaps        = 0x00000001
	ddsdHeight      = 0x00000002
	ddsdWidth       = 0x00000004
	ddsdPixelformat = 0x00001000
	ddsdDepth       = 0x00800000
	ddpfLuminance   = 0x00020000
	ddscapsTexture  = 0x00001000
	ddscapsComplex  = 0x00000008
	ddscaps2Volume  = 0x00200000
)

// saveDDS writes a single channel 8 or 16 bit texture. A depth above
// one produces a volume texture.
func saveDDS(filename string, data []byte, width, height, depth, bits int) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	header := DDSHeader{
		Magic:            ddsMagic,
		Size:             124,
		Flags:            ddsdCaps | ddsdHeight | ddsdWidth | ddsdPixelformat,
		Height:           uint32(height),
		Width:            uint32(width),
		Depth:            uint32(depth),
		PitchOrLinear:    uint32(len(data) / depth),
		PixelFormatSize:  32,
		PixelFormatFlags: ddpfLuminance,
		RGBBitCount:      uint32(bits),
		RBitMask:         uint32(1<<uint(bits) - 1),
		Caps:             ddscapsTexture,
	}

	if depth > 1 {
		header.Flags |= ddsdDepth
		header.Caps |= ddscapsComplex
		header.Caps2 = ddscaps2Volume
	}

	if err := binary.Write(file, binary.LittleEndian, &header); err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		return err
	}

	return nil
}
