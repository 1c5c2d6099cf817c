// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RotationRequest asks for a new cipher pool entry to become the latest one
// and for all existing records to be migrated to it.
type RotationRequest struct {
	// Algorithm is the cipher type name, e.g. "AES_GCM_SIV_256".
	Algorithm string `json:"algorithm"`

	// SecretSource points at the new secret.
	SecretSource SecretSource `json:"secretSource"`

	// RequestedBy identifies the operator, taken from the token subject.
	RequestedBy string `json:"-"`
}

// RotationReport summarizes one rotation campaign, i.e. one pass over all
// records not yet encrypted with the latest pool entry.
type RotationReport struct {
	CampaignID   string    `json:"campaignId"`
	TargetPoolID int64     `json:"targetPoolId"`
	Total        int       `json:"total"`
	Rotated      int       `json:"rotated"`
	Failed       int       `json:"failed"`
	Conflicts    int       `json:"conflicts"`
	StartedAt    time.Time `json:"startedAt"`
	FinishedAt   time.Time `json:"finishedAt"`

	// FailedIDs lists records that could not be rotated, capped to keep
	// reports small.
	FailedIDs []string `json:"failedIds,omitempty"`
}

// RotationAccepted is returned when a rotation was started asynchronously.
type RotationAccepted struct {
	CampaignID string `json:"campaignId"`
	PoolID     int64  `json:"poolId"`
}

// PoolUsage tells how many records reference a cipher pool entry.
type PoolUsage struct {
	PoolID    int64  `json:"poolId"`
	Algorithm string `json:"algorithm"`
	Records   int64  `json:"records"`
}

// EncryptionStatus describes the current state of the cipher pool and how
// far the records are from being fully rotated.
type EncryptionStatus struct {
	LatestPoolID    int64           `json:"latestPoolId"`
	Pools           []PoolUsage     `json:"pools"`
	OutdatedRecords int64           `json:"outdatedRecords"`
	RotationRunning bool            `json:"rotationRunning"`
	LastRotation    *RotationReport `json:"lastRotation,omitempty"`
}
