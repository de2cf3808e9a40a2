package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/imagegen"
	"github.com/Ghost3nexus/FASTSHOOTINGAI/pkg/idphoto"
)

const (
	defaultServerURL  = "http://localhost:8080"
	defaultBackground = "white"
	defaultOutfit     = "other"
)

func main() {
	var (
		imageFlag      string
		outFlag        string
		serverFlag     string
		backgroundFlag string
		outfitFlag     string
		beautifyFlag   bool
		timeoutFlag    time.Duration
	)
	flag.StringVar(&imageFlag, "image", "", "Path to the source photo (required)")
	flag.StringVar(&outFlag, "out", "", "Output path (defaults to <image>_idphoto.png)")
	flag.StringVar(&serverFlag, "server", defaultServerURL, "Base URL of the ID photo API")
	flag.StringVar(&backgroundFlag, "background", defaultBackground, "Background color: "+strings.Join(imagegen.BackgroundColors(), ", "))
	flag.StringVar(&outfitFlag, "outfit", defaultOutfit, "Outfit: "+strings.Join(imagegen.Outfits(), ", ")+", or other for generic attire")
	flag.BoolVar(&beautifyFlag, "beautify", false, "Apply light, natural retouching")
	flag.DurationVar(&timeoutFlag, "timeout", 2*time.Minute, "Request timeout")
	flag.Parse()

	if strings.TrimSpace(imageFlag) == "" {
		fmt.Fprintln(os.Stderr, "-image is required")
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(imageFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read source photo: %v\n", err)
		os.Exit(1)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(imageFlag))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	client := idphoto.NewClient(idphoto.Options{
		BaseURL:    serverFlag,
		HTTPClient: &http.Client{Timeout: timeoutFlag},
	})

	fmt.Printf("Generating ID photo (background: %s, outfit: %s, beautification: %t)...\n",
		imagegen.DisplayName(backgroundFlag), imagegen.DisplayName(outfitFlag), beautifyFlag)

	result, err := client.Generate(context.Background(), idphoto.Request{
		Base64Image:          base64.StdEncoding.EncodeToString(data),
		MIMEType:             mimeType,
		BackgroundColor:      backgroundFlag,
		Outfit:               outfitFlag,
		EnableBeautification: beautifyFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	decoded, err := base64.StdEncoding.DecodeString(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode generated image: %v\n", err)
		os.Exit(1)
	}

	out := strings.TrimSpace(outFlag)
	if out == "" {
		out = strings.TrimSuffix(imageFlag, filepath.Ext(imageFlag)) + "_idphoto.png"
	}
	if err := os.WriteFile(out, decoded, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %d bytes to %s\n", len(decoded), out)
}
