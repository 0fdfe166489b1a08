package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"regexp"
	"strconv"

	"github.com/lunabrook/gfxmath/simplex"
)

func main() {
	// Bakes a 2D or 3D scalar noise texture:
	// - Resolution: WIDTHxHEIGHT for flat, WIDTHxHEIGHTxDEPTH for a
	//   volume, or a single number for a square/cube
	// - Output type: u8 or u16, scaled to the sampled range
	// - Output formats: png (flat only), raw bin, dds
	// A json sidecar carries the range scale/bias so shaders can
	// reconstruct the original values.

	outputTypePtr := flag.Int("type", 8, "Output type, 8 or 16 bits")
	outputResolutionPtr := flag.String("res", "256x256", "Output resolution, WIDTHxHEIGHT or WIDTHxHEIGHTxDEPTH")
	formatPtr := flag.String("format", "png", "Output file format, png, bin or dds")
	freqPtr := flag.Float64("freq", 0.05, "Sample frequency per texel")
	seedPtr := flag.Int("seed", 0, "Noise seed")
	timeSeedPtr := flag.Bool("timeseed", false, "Seed from the clock instead of -seed")
	outPtr := flag.String("out", "noise", "Output path without extension")
	flag.Parse()

	if *outputTypePtr != 8 && *outputTypePtr != 16 {
		fmt.Println("Output type must be 8 or 16")
		return
	}

	if *formatPtr != "png" && *formatPtr != "bin" && *formatPtr != "dds" {
		fmt.Println("Output format must be \"png\", \"bin\" or \"dds\"")
		return
	}

	settings := bakeSettings{
		depth: 1,
		freq:  float32(*freqPtr),
		seed:  int32(*seedPtr),
		bits:  *outputTypePtr,
	}

	if *timeSeedPtr {
		settings.seed = simplex.TimeSeed()
	}

	reSize0 := regexp.MustCompile(`^(\d{1,4})x(\d{1,4})(?:x(\d{1,4}))?$`)
	reSize1 := regexp.MustCompile(`^(\d{1,4})$`)

	if matches := reSize0.FindStringSubmatch(*outputResolutionPtr); matches != nil {
		w, _ := strconv.Atoi(matches[1])
		h, _ := strconv.Atoi(matches[2])
		settings.width = w
		settings.height = h
		if matches[3] != "" {
			d, _ := strconv.Atoi(matches[3])
			settings.depth = d
		}
	} else if matches := reSize1.FindStringSubmatch(*outputResolutionPtr); matches != nil {
		w, _ := strconv.Atoi(matches[1])
		settings.width = w
		settings.height = w
	} else {
		fmt.Println("Invalid output resolution")
		return
	}

	if settings.width <= 0 || settings.height <= 0 || settings.depth <= 0 ||
		settings.width > 2048 || settings.height > 2048 || settings.depth > 2048 {
		fmt.Println("Output resolution must be between 1 and 2048, inclusive")
		return
	}

	if settings.depth > 1 && *formatPtr == "png" {
		fmt.Println("png output only supports flat textures, use bin or dds")
		return
	}

	fmt.Printf("Baking %d x %d x %d, seed %d...\n",
		settings.width, settings.height, settings.depth, settings.seed)

	var data []float32
	var minV, maxV float32

	if settings.depth > 1 {
		data, minV, maxV = bake3(settings)
	} else {
		data, minV, maxV = bake2(settings)
	}

	payload := quantize(data, minV, maxV, settings.bits)

	fmt.Println("Writing files...")

	var err error
	outFile := *outPtr + "." + *formatPtr

	switch *formatPtr {
	case "png":
		err = savePNG(outFile, payload, settings.width, settings.height, settings.bits)
	case "dds":
		err = saveDDS(outFile, payload, settings.width, settings.height, settings.depth, settings.bits)
	default:
		err = os.WriteFile(outFile, payload, 0644)
	}

	if err != nil {
		fmt.Println("Error saving file:", err)
		return
	}

	jsonData, err := json.MarshalIndent(map[string]any{
		"value_min":      minV,
		"value_max":      maxV,
		"texture_width":  settings.width,
		"texture_height": settings.height,
		"texture_depth":  settings.depth,
		"texture_data":   outFile,
		"texture_format": fmt.Sprintf("u%d", settings.bits),
		"frequency":      settings.freq,
		"seed":           settings.seed,
	}, "", "  ")
	if err != nil {
		panic(err)
	}

	err = os.WriteFile(*outPtr+".json", jsonData, 0644)
	if err != nil {
		panic(err)
	}

	fmt.Println("Done.")
}

// savePNG writes the quantized payload as an 8 or 16 bit grayscale
// image. 16 bit PNG samples are big endian, unlike the raw payload.
func savePNG(filename string, payload []byte, width, height, bits int) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	rect := image.Rect(0, 0, width, height)

	if bits == 16 {
		img := image.NewGray16(rect)
		for i := 0; i < width*height; i++ {
			img.Pix[i*2] = payload[i*2+1]
			img.Pix[i*2+1] = payload[i*2]
		}
		return png.Encode(file, img)
	}

	img := image.NewGray(rect)
	copy(img.Pix, payload)
	return png.Encode(file, img)
}
