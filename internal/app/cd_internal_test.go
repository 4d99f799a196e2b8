package app

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bsh/internal/core/domain"
	"golang.org/x/sys/unix"
)

func TestCdError(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{err: &fs.PathError{Op: "chdir", Path: "x", Err: unix.ENOENT}, want: domain.ErrNoSuchDirectory},
		{err: &fs.PathError{Op: "chdir", Path: "x", Err: unix.EACCES}, want: domain.ErrPermissionDenied},
		{err: &fs.PathError{Op: "chdir", Path: "x", Err: unix.ENOTDIR}, want: domain.ErrNotADirectory},
		{err: &fs.PathError{Op: "chdir", Path: "x", Err: unix.ELOOP}, want: domain.ErrCdUnhandled},
		{err: errors.New("odd"), want: domain.ErrCdUnhandled},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cdError(tt.err))
	}
}
