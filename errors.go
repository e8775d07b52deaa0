// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package goflashrom

import (
	"fmt"
)

// DescriptorError indicates the hardware flash descriptor could not be read
// or parsed into a region layout.
type DescriptorError struct {
	Err error
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("failed to read layout from flash descriptor: %v", e.Err)
}

func (e *DescriptorError) Unwrap() error { return e.Err }

// UnsupportedRegionError indicates the requested region name is absent from
// the descriptor layout.
type UnsupportedRegionError struct {
	Region string
}

func (e *UnsupportedRegionError) Error() string {
	return fmt.Sprintf("invalid region name %q", e.Region)
}

// BackupIOError indicates a local filesystem failure while creating the
// backup directory or persisting the backup artifact.
type BackupIOError struct {
	Path string
	Err  error
}

func (e *BackupIOError) Error() string {
	return fmt.Sprintf("backup I/O failed for %s: %v", e.Path, e.Err)
}

func (e *BackupIOError) Unwrap() error { return e.Err }

// FlashReadError indicates the flash read primitive failed.
type FlashReadError struct {
	Err error
}

func (e *FlashReadError) Error() string {
	return fmt.Sprintf("failed to read flash contents: %v", e.Err)
}

func (e *FlashReadError) Unwrap() error { return e.Err }

// SizeMismatchError indicates the update image length differs from the
// device's reported flash size. Raised before any hardware operation.
type SizeMismatchError struct {
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("invalid image size 0x%x, expected 0x%x", e.Actual, e.Expected)
}

// FlashWriteError indicates the flash write primitive reported failure. The
// write phase is never marked complete on this error.
type FlashWriteError struct {
	Err error
}

func (e *FlashWriteError) Error() string {
	return fmt.Sprintf("image write failed: %v", e.Err)
}

func (e *FlashWriteError) Unwrap() error { return e.Err }

// VerifyError indicates the post-write read-back does not match the intended
// image. The physical write may have partially or fully succeeded; callers
// must not assume the pre-update image is still in place.
type VerifyError struct {
	Err error
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("image verify failed: %v", e.Err)
}

func (e *VerifyError) Unwrap() error { return e.Err }

// PostActionError indicates the auxiliary reset failed after a successful,
// verified write. The firmware itself is correctly installed.
type PostActionError struct {
	Err error
}

func (e *PostActionError) Error() string {
	return fmt.Sprintf("firmware written and verified, but post-write reset failed: %v", e.Err)
}

func (e *PostActionError) Unwrap() error { return e.Err }
