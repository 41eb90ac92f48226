package util

import (
	"bytes"
	"image"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

const thumbnailWidth = 320

// GetSafeContentType 基于文件头嗅探真实类型，不信任客户端声明
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// DecodeImage 解码并返回图像与原始尺寸
func DecodeImage(data []byte) (image.Image, int, int, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, 0, err
	}
	bounds := img.Bounds()
	return img, bounds.Dx(), bounds.Dy(), nil
}

// MakeThumbnail 生成固定宽度的缩略图并编码为 JPEG
func MakeThumbnail(img image.Image) (*bytes.Buffer, error) {
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, err
	}
	return buf, nil
}
