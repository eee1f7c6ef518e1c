package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
)

const (
	copyBufferSize = 8 * 1024
	yieldEvery     = 4 * 1024 * 1024
)

type FileService interface {
	Store(title, filename string, src io.Reader) (*model.FileInfo, error)
}

type localFileService struct {
	dir string
}

func NewLocalFileService(dir string) FileService {
	return &localFileService{dir: dir}
}

// Store writes src to a new file named after the upload time and a hash of
// the submitted title, keeping the original file extension. A write error
// mid-stream leaves the partial file behind.
func (s *localFileService) Store(title, filename string, src io.Reader) (*model.FileInfo, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("upload-%d-%d%s", time.Now().UnixMilli(), titleHash(title), filepath.Ext(filename))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := copyWithYield(dst, src); err != nil {
		return nil, err
	}

	return &model.FileInfo{Path: path}, nil
}

// copyWithYield copies in fixed-size chunks and hands the scheduler a
// chance to run other goroutines after every 4MB, so one large upload does
// not monopolize its thread.
func copyWithYield(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, copyBufferSize)
	var copied, sinceYield int64

	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return copied, werr
			}
			copied += int64(n)
			sinceYield += int64(n)
			if sinceYield >= yieldEvery {
				runtime.Gosched()
				sinceYield %= yieldEvery
			}
		}
		if rerr == io.EOF {
			return copied, nil
		}
		if rerr != nil {
			return copied, rerr
		}
	}
}

// titleHash is the 31-multiplier string hash the upload filenames have
// always used, signed 32-bit wraparound included.
func titleHash(title string) int32 {
	var h int32
	for _, r := range title {
		h = 31*h + int32(r)
	}
	return h
}
