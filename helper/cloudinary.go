package helper

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// ExtractPublicID recovers the cloudinary public id from a delivery URL:
// https://res.cloudinary.com/<cloud-name>/image/upload/<folder>/<public-id>.<format>
func ExtractPublicID(url string) string {
	parts := strings.Split(url, "/")
	n := len(parts)
	if n < 4 {
		return ""
	}
	publicID := strings.Join(parts[n-2:n], "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}

// DestroyImage removes an uploaded dish photo. Best effort; failures are
// logged, not surfaced.
func DestroyImage(imageUrl string) {
	publicID := ExtractPublicID(imageUrl)
	if publicID == "" {
		return
	}

	cld := InitCloudinary()
	invalidate := true
	_, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
		Invalidate:   &invalidate,
	})
	if err != nil {
		log.Printf("failed to delete cloudinary image %s: %v", publicID, err)
	}
}
