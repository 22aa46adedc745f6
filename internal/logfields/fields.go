/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAdditionalMessage = "additionalMessage"
	FieldAnchorState       = "anchorState"
	FieldAttempt           = "attempt"
	FieldBreakerState      = "breakerState"
	FieldCredentialHash    = "credentialHash"
	FieldDecision          = "decision"
	FieldEndpoint          = "endpoint"
	FieldEntryType         = "entryType"
	FieldEvent             = "event"
	FieldJobID             = "jobID"
	FieldJSONSchemaID      = "jsonSchemaID"
	FieldLogIndex          = "logIndex"
	FieldReasonCodes       = "reasonCodes"
	FieldRootHash          = "rootHash"
	FieldService           = "service"
	FieldSleep             = "sleep"
	FieldTreeSize          = "treeSize"
	FieldUserLogLevel      = "userLogLevel"
	FieldWorkers           = "workers"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.Any(FieldAdditionalMessage, value)
}

// WithAnchorState sets the AnchorState field.
func WithAnchorState(state string) zap.Field {
	return zap.String(FieldAnchorState, state)
}

// WithAttempt sets the Attempt field.
func WithAttempt(attempt int) zap.Field {
	return zap.Int(FieldAttempt, attempt)
}

// WithBreakerState sets the BreakerState field.
func WithBreakerState(state string) zap.Field {
	return zap.String(FieldBreakerState, state)
}

// WithCredentialHash sets the CredentialHash field.
func WithCredentialHash(hash string) zap.Field {
	return zap.String(FieldCredentialHash, hash)
}

// WithDecision sets the Decision field.
func WithDecision(decision string) zap.Field {
	return zap.String(FieldDecision, decision)
}

// WithEndpoint sets the Endpoint field.
func WithEndpoint(endpoint string) zap.Field {
	return zap.String(FieldEndpoint, endpoint)
}

// WithEntryType sets the EntryType (transparency log entry type) field.
func WithEntryType(entryType string) zap.Field {
	return zap.String(FieldEntryType, entryType)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithJobID sets the JobID field.
func WithJobID(jobID string) zap.Field {
	return zap.String(FieldJobID, jobID)
}

// WithJSONSchemaID sets the jsonSchemaID field.
func WithJSONSchemaID(id string) zap.Field {
	return zap.String(FieldJSONSchemaID, id)
}

// WithLogIndex sets the LogIndex field.
func WithLogIndex(index uint64) zap.Field {
	return zap.Uint64(FieldLogIndex, index)
}

// WithReasonCodes sets the ReasonCodes field.
func WithReasonCodes(codes []string) zap.Field {
	return zap.Strings(FieldReasonCodes, codes)
}

// WithRootHash sets the RootHash field.
func WithRootHash(rootHash string) zap.Field {
	return zap.String(FieldRootHash, rootHash)
}

// WithService sets the Service field.
func WithService(name string) zap.Field {
	return zap.String(FieldService, name)
}

// WithSleep sets the sleep field.
func WithSleep(sleep time.Duration) zap.Field {
	return zap.Duration(FieldSleep, sleep)
}

// WithTreeSize sets the TreeSize field.
func WithTreeSize(size uint64) zap.Field {
	return zap.Uint64(FieldTreeSize, size)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithWorkers sets the Workers field.
func WithWorkers(workers int) zap.Field {
	return zap.Int(FieldWorkers, workers)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
