/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	CanonicalizerComponent   Component = "canonicalizer"
	IssuanceSvcComponent     Component = "issuer.issuance-service"
	StatusListSvcComponent   Component = "issuer.status-list-service"
	AnchorQueueComponent     Component = "anchor.queue"
	WitnessSvcComponent      Component = "verifier.witness-service"
	VerificationSvcComponent Component = "verifier.decision-engine"
	TransparencyLogComponent Component = "transparency-log"
	RESTComponent            Component = "rest-api"
)
