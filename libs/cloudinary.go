package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"shoe-store/config"
)

// UploadToCloudinary pushes a locally staged image to the object-storage
// service and returns its public URL. The local file is removed either way.
func UploadToCloudinary(ctx context.Context, localPath, folder string) (string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := newClient()
	if err != nil {
		os.Remove(localPath)
		return "", err
	}

	resp, err := cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("%s_%d", folder, time.Now().UnixNano()),
		Folder:   folder,
	})

	os.Remove(localPath)

	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("cloudinary returned an empty response")
	}

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return "", fmt.Errorf("cloudinary response has no public URL")
}

func newClient() (*cloudinary.Cloudinary, error) {
	if url := config.AppConfig.CloudinaryURL; url != "" {
		cld, err := cloudinary.NewFromURL(url)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init from URL failed: %w", err)
		}
		return cld, nil
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary environment variables not set")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from params failed: %w", err)
	}
	return cld, nil
}
