package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	photoMaxW    = 800
	photoMaxH    = 800
	photoQuality = 80
)

// SavePhotoAsWebP: baca multipart → decode → resize bila perlu → encode webp →
// simpan ke folder upload. Mengembalikan nama file yang tersimpan.
func SavePhotoAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("gagal membaca file gambar: %w", err)
	}
	if len(all) == 0 {
		return "", fmt.Errorf("file gambar kosong")
	}

	img, _, err := image.Decode(bytes.NewReader(all))
	if err != nil {
		return "", fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	img = downscaleIfNeeded(img, photoMaxW, photoMaxH)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: photoQuality}); err != nil {
		return "", fmt.Errorf("encode webp gagal: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename)
	dest := filepath.Join(folder, filename)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("simpan file gagal: %w", err)
	}
	return filename, nil
}

func downscaleIfNeeded(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// ✅ Buat nama unik: tanggal + uuid + nama asli (disanitasi), ekstensi .webp
func GenerateUniqueFilename(originalFilename string) string {
	base := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s.webp", timestamp, uuid.New().String(), sanitizeFilename(base))
}

func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}
