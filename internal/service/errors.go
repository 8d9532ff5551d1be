// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrAuthenticationInProgress is returned by Unlock while a previous
	// authentication has not completed.
	ErrAuthenticationInProgress = errors.New("authentication is already in progress")

	// ErrControllerStopped is returned once the controller event loop has exited.
	ErrControllerStopped = errors.New("note controller is stopped")
)
