// Package media сохраняет изображения рецептов. Изображение приходит в API
// как data URI (data:image/png;base64,...), декодируется и сохраняется
// в локальный каталог или в S3-совместимое хранилище; в рецепте остаётся
// только ссылка на сохранённый файл.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidImage возвращается для data URI, который не удалось разобрать.
var ErrInvalidImage = errors.New("invalid image")

// MaxImageSize ограничивает размер декодированного изображения.
const MaxImageSize = 5 << 20

// ErrForeignRef возвращается при удалении ссылки, которую хранилище не выдавало.
var ErrForeignRef = errors.New("reference does not belong to store")

// Store сохраняет байты изображения и возвращает ссылку на него.
// Remove удаляет объект по ссылке, ранее возвращённой Save.
type Store interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
	Remove(ctx context.Context, ref string) error
}

// Image: декодированное изображение из data URI.
type Image struct {
	ContentType string
	Ext         string
	Data        []byte
}

var extByType = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// IsDataURI сообщает, записано ли изображение в виде data URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// DecodeDataURI разбирает строку вида data:image/<ext>;base64,<payload>.
func DecodeDataURI(s string) (*Image, error) {
	const op = "media.DecodeDataURI"

	header, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok || !IsDataURI(s) {
		return nil, fmt.Errorf("%s: %w: not a data uri", op, ErrInvalidImage)
	}
	contentType, encoding, _ := strings.Cut(header, ";")
	if encoding != "base64" {
		return nil, fmt.Errorf("%s: %w: only base64 encoding is supported", op, ErrInvalidImage)
	}
	ext, ok := extByType[strings.ToLower(contentType)]
	if !ok {
		return nil, fmt.Errorf("%s: %w: unsupported type %q", op, ErrInvalidImage, contentType)
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageSize {
		return nil, fmt.Errorf("%s: %w: image is too large", op, ErrInvalidImage)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w: empty image", op, ErrInvalidImage)
	}
	return &Image{ContentType: strings.ToLower(contentType), Ext: ext, Data: data}, nil
}

// SaveImage сохраняет изображение под случайным именем и возвращает ссылку.
// Значение, которое не является data URI, считается уже сохранённой ссылкой
// и возвращается без изменений.
func SaveImage(ctx context.Context, store Store, value string) (string, error) {
	const op = "media.SaveImage"

	if !IsDataURI(value) {
		return value, nil
	}
	img, err := DecodeDataURI(value)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("recipes/images/%s.%s", uuid.NewString(), img.Ext)
	ref, err := store.Save(ctx, name, img.ContentType, img.Data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return ref, nil
}
