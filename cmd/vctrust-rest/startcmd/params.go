/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/vctrust/cmd/common"
	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the vctrust-rest instance on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "VCTRUST_REST_HOST_URL"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for vctrust server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "VCTRUST_REST_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for vctrust server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "VCTRUST_REST_TLS_KEY"

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolEnvKey    = "VCTRUST_REST_TLS_SYSTEMCERTPOOL"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool for outbound TLS connections. " +
		"Possible values [true] [false]. Defaults to false if not set. " + commonEnvVarUsageText + tlsSystemCertPoolEnvKey

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsEnvKey    = "VCTRUST_REST_TLS_CACERTS"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path. " + commonEnvVarUsageText + tlsCACertsEnvKey

	apiKeyFlagName  = "api-key"
	apiKeyEnvKey    = "VCTRUST_REST_API_KEY" //nolint: gosec
	apiKeyFlagUsage = "API key expected in the X-API-Key header of operator endpoints (dead-letter, replay, " +
		"log append, log levels). Operator endpoints are open when not set. " + commonEnvVarUsageText + apiKeyEnvKey

	statusStoreTypeFlagName  = "status-store-type"
	statusStoreTypeEnvKey    = "VCTRUST_STATUS_STORE_TYPE"
	statusStoreTypeFlagUsage = "Storage of the credential status list. Supported options: mem, redis. " +
		"Defaults to mem. " + commonEnvVarUsageText + statusStoreTypeEnvKey

	redisAddrsFlagName  = "redis-addrs"
	redisAddrsEnvKey    = "VCTRUST_REDIS_ADDRS"
	redisAddrsFlagUsage = "Comma-separated list of redis addresses. Required for status-store-type redis. " +
		commonEnvVarUsageText + redisAddrsEnvKey

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "VCTRUST_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Redis sentinel master name. " + commonEnvVarUsageText + redisMasterNameEnvKey

	redisTLSFlagName  = "redis-tls"
	redisTLSEnvKey    = "VCTRUST_REDIS_TLS"
	redisTLSFlagUsage = "Connect to redis over TLS using the configured CA certificates. " +
		"Possible values [true] [false]. " + commonEnvVarUsageText + redisTLSEnvKey

	redisPasswordFlagName  = "redis-password"
	redisPasswordEnvKey    = "VCTRUST_REDIS_PASSWORD" //nolint: gosec
	redisPasswordFlagUsage = "Redis password. " + commonEnvVarUsageText + redisPasswordEnvKey

	chainRPCURLFlagName  = "chain-rpc-url"
	chainRPCURLEnvKey    = "VCTRUST_CHAIN_RPC_URL"
	chainRPCURLFlagUsage = "JSON-RPC endpoint of the anchoring registry. When not set an in-process ledger is used. " +
		commonEnvVarUsageText + chainRPCURLEnvKey

	policyFileFlagName  = "policy-file"
	policyFileEnvKey    = "VCTRUST_POLICY_FILE"
	policyFileFlagUsage = "Path to a YAML file with anchor retry, circuit breaker and worker settings. " +
		"Explicit flags override values from the file. " + commonEnvVarUsageText + policyFileEnvKey

	anchorWorkersFlagName  = "anchor-workers"
	anchorWorkersEnvKey    = "VCTRUST_ANCHOR_WORKERS"
	anchorWorkersFlagUsage = "Number of concurrent anchor submissions. " + commonEnvVarUsageText + anchorWorkersEnvKey

	anchorMaxRetriesFlagName  = "anchor-max-retries"
	anchorMaxRetriesEnvKey    = "VCTRUST_ANCHOR_MAX_RETRIES"
	anchorMaxRetriesFlagUsage = "Retries after the first anchor attempt before a job is dead-lettered. " +
		commonEnvVarUsageText + anchorMaxRetriesEnvKey

	anchorBaseDelayFlagName  = "anchor-backoff-base"
	anchorBaseDelayEnvKey    = "VCTRUST_ANCHOR_BACKOFF_BASE"
	anchorBaseDelayFlagUsage = "Backoff before the first anchor retry, e.g. 1s. " +
		commonEnvVarUsageText + anchorBaseDelayEnvKey

	anchorMaxDelayFlagName  = "anchor-backoff-cap"
	anchorMaxDelayEnvKey    = "VCTRUST_ANCHOR_BACKOFF_CAP"
	anchorMaxDelayFlagUsage = "Upper bound of the anchor retry backoff, e.g. 5m. " +
		commonEnvVarUsageText + anchorMaxDelayEnvKey

	anchorJitterFlagName  = "anchor-jitter"
	anchorJitterEnvKey    = "VCTRUST_ANCHOR_JITTER"
	anchorJitterFlagUsage = "Randomize anchor retry delays. Possible values [true] [false]. " +
		commonEnvVarUsageText + anchorJitterEnvKey

	anchorAttemptTimeoutFlagName  = "anchor-attempt-timeout"
	anchorAttemptTimeoutEnvKey    = "VCTRUST_ANCHOR_ATTEMPT_TIMEOUT"
	anchorAttemptTimeoutFlagUsage = "Timeout of one anchor submission, e.g. 30s. " +
		commonEnvVarUsageText + anchorAttemptTimeoutEnvKey

	breakerFailureThresholdFlagName  = "breaker-failure-threshold"
	breakerFailureThresholdEnvKey    = "VCTRUST_BREAKER_FAILURE_THRESHOLD"
	breakerFailureThresholdFlagUsage = "Consecutive endpoint failures that open the circuit. " +
		commonEnvVarUsageText + breakerFailureThresholdEnvKey

	breakerResetTimeoutFlagName  = "breaker-reset-timeout"
	breakerResetTimeoutEnvKey    = "VCTRUST_BREAKER_RESET_TIMEOUT"
	breakerResetTimeoutFlagUsage = "Time an open circuit waits before a probe is let through, e.g. 30s. " +
		commonEnvVarUsageText + breakerResetTimeoutEnvKey

	issuerKeyFileFlagName  = "issuer-key-file"
	issuerKeyFileEnvKey    = "VCTRUST_ISSUER_KEY_FILE"
	issuerKeyFileFlagUsage = "Path to a private JWK (Ed25519 or P-256) used to sign issued credentials. " +
		"A fresh key is generated on start when not set. " + commonEnvVarUsageText + issuerKeyFileEnvKey

	hashAlgorithmFlagName  = "hash-algorithm"
	hashAlgorithmEnvKey    = "VCTRUST_HASH_ALGORITHM"
	hashAlgorithmFlagUsage = "Default digest for proof metadata. Supported options: sha256, sha384, sha512. " +
		commonEnvVarUsageText + hashAlgorithmEnvKey

	checkpointBucketFlagName  = "checkpoint-s3-bucket"
	checkpointBucketEnvKey    = "VCTRUST_CHECKPOINT_S3_BUCKET"
	checkpointBucketFlagUsage = "S3 bucket that receives transparency log checkpoints. Checkpoints are kept in " +
		"memory when not set. " + commonEnvVarUsageText + checkpointBucketEnvKey

	checkpointRegionFlagName  = "checkpoint-s3-region"
	checkpointRegionEnvKey    = "VCTRUST_CHECKPOINT_S3_REGION"
	checkpointRegionFlagUsage = "Region of the checkpoint bucket. " + commonEnvVarUsageText + checkpointRegionEnvKey

	checkpointEndpointFlagName  = "checkpoint-s3-endpoint"
	checkpointEndpointEnvKey    = "VCTRUST_CHECKPOINT_S3_ENDPOINT"
	checkpointEndpointFlagUsage = "Custom S3 endpoint, e.g. a local S3-compatible server. " +
		commonEnvVarUsageText + checkpointEndpointEnvKey

	checkpointEveryFlagName  = "checkpoint-every"
	checkpointEveryEnvKey    = "VCTRUST_CHECKPOINT_EVERY"
	checkpointEveryFlagUsage = "Archive a checkpoint after every N log appends. Defaults to 1. " +
		commonEnvVarUsageText + checkpointEveryEnvKey

	metricsProviderFlagName  = "metrics-provider-name"
	metricsProviderEnvKey    = "VCTRUST_METRICS_PROVIDER_NAME"
	metricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "VCTRUST_REST_TRACING_PROVIDER"
	tracingProviderFlagUsage = "The tracing provider (JAEGER, STDOUT). " +
		commonEnvVarUsageText + tracingProviderEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "VCTRUST_REST_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "The name of the tracing service. Default: vctrust. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	tracingSampleRatioFlagName  = "tracing-sample-ratio"
	tracingSampleRatioEnvKey    = "VCTRUST_REST_TRACING_SAMPLE_RATIO"
	tracingSampleRatioFlagUsage = "Fraction of requests to trace, between 0 and 1. Default: 1. " +
		commonEnvVarUsageText + tracingSampleRatioEnvKey

	statusStoreTypeMem   = "mem"
	statusStoreTypeRedis = "redis"

	metricsProviderPrometheus = "prometheus"

	defaultTracingServiceName = "vctrust"
	defaultCheckpointEvery    = 1
)

type startupParameters struct {
	hostURL             string
	tlsParameters       *tlsParameters
	apiKey              string
	dbParameters        *common.DBParameters
	redisParameters     *redisParameters
	chainRPCURL         string
	engine              *EnginePolicy
	issuerKeyFile       string
	hashAlgorithm       canonical.Algorithm
	checkpointParams    *checkpointParameters
	metricsProviderName string
	tracingParams       *tracingParams
	logLevel            string
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

type redisParameters struct {
	addrs      []string
	masterName string
	password   string
	useTLS     bool
}

type checkpointParameters struct {
	bucket   string
	region   string
	endpoint string
	every    uint64
}

type tracingParams struct {
	provider    tracing.SpanExporterType
	serviceName string
	sampleRatio float64
}

// nolint: gocyclo,funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	redisParams, err := getRedisParameters(cmd)
	if err != nil {
		return nil, err
	}

	engine, err := getEnginePolicy(cmd)
	if err != nil {
		return nil, err
	}

	hashAlgorithm, err := canonical.ParseAlgorithm(
		cmdutils.GetUserSetOptionalVarFromString(cmd, hashAlgorithmFlagName, hashAlgorithmEnvKey))
	if err != nil {
		return nil, err
	}

	checkpointParams, err := getCheckpointParameters(cmd)
	if err != nil {
		return nil, err
	}

	metricsProviderName := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName,
		metricsProviderEnvKey)
	if metricsProviderName != "" && metricsProviderName != metricsProviderPrometheus {
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProviderName)
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	var systemCertPool bool

	if err = setBool(cmd, tlsSystemCertPoolFlagName, tlsSystemCertPoolEnvKey, &systemCertPool); err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL: hostURL,
		tlsParameters: &tlsParameters{
			systemCertPool: systemCertPool,
			caCerts:        cmdutils.GetUserSetOptionalCSVVar(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
			serveCertPath: cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey),
			serveKeyPath:  cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey),
		},
		apiKey:              cmdutils.GetUserSetOptionalVarFromString(cmd, apiKeyFlagName, apiKeyEnvKey),
		dbParameters:        dbParams,
		redisParameters:     redisParams,
		chainRPCURL:         cmdutils.GetUserSetOptionalVarFromString(cmd, chainRPCURLFlagName, chainRPCURLEnvKey),
		engine:              engine,
		issuerKeyFile:       cmdutils.GetUserSetOptionalVarFromString(cmd, issuerKeyFileFlagName, issuerKeyFileEnvKey),
		hashAlgorithm:       hashAlgorithm,
		checkpointParams:    checkpointParams,
		metricsProviderName: metricsProviderName,
		tracingParams:       tracingParams,
		logLevel:            cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
	}, nil
}

// getRedisParameters returns nil when the status list is kept in memory.
func getRedisParameters(cmd *cobra.Command) (*redisParameters, error) {
	storeType := cmdutils.GetUserSetOptionalVarFromString(cmd, statusStoreTypeFlagName, statusStoreTypeEnvKey)

	switch storeType {
	case "", statusStoreTypeMem:
		return nil, nil
	case statusStoreTypeRedis:
	default:
		return nil, fmt.Errorf("unsupported status store type: %s", storeType)
	}

	addrs := cmdutils.GetUserSetOptionalCSVVar(cmd, redisAddrsFlagName, redisAddrsEnvKey)
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%s is required for status store type %s", redisAddrsFlagName, storeType)
	}

	var useTLS bool

	if err := setBool(cmd, redisTLSFlagName, redisTLSEnvKey, &useTLS); err != nil {
		return nil, err
	}

	return &redisParameters{
		useTLS:     useTLS,
		addrs:      addrs,
		masterName: cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey),
		password:   cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
	}, nil
}

// getEnginePolicy loads the policy file, if any, and applies the explicit flags on top of it.
func getEnginePolicy(cmd *cobra.Command) (*EnginePolicy, error) {
	policy, err := LoadEnginePolicy(
		cmdutils.GetUserSetOptionalVarFromString(cmd, policyFileFlagName, policyFileEnvKey))
	if err != nil {
		return nil, err
	}

	if err = setInt(cmd, anchorWorkersFlagName, anchorWorkersEnvKey, &policy.Anchor.Workers); err != nil {
		return nil, err
	}

	if err = setInt(cmd, anchorMaxRetriesFlagName, anchorMaxRetriesEnvKey, &policy.Anchor.MaxRetries); err != nil {
		return nil, err
	}

	if err = setDuration(cmd, anchorBaseDelayFlagName, anchorBaseDelayEnvKey, &policy.Anchor.BaseDelay); err != nil {
		return nil, err
	}

	if err = setDuration(cmd, anchorMaxDelayFlagName, anchorMaxDelayEnvKey, &policy.Anchor.MaxDelay); err != nil {
		return nil, err
	}

	if err = setDuration(cmd, anchorAttemptTimeoutFlagName, anchorAttemptTimeoutEnvKey,
		&policy.Anchor.AttemptTimeout); err != nil {
		return nil, err
	}

	if err = setBool(cmd, anchorJitterFlagName, anchorJitterEnvKey, &policy.Anchor.Jitter); err != nil {
		return nil, err
	}

	if err = setInt(cmd, breakerFailureThresholdFlagName, breakerFailureThresholdEnvKey,
		&policy.Breaker.FailureThreshold); err != nil {
		return nil, err
	}

	if err = setDuration(cmd, breakerResetTimeoutFlagName, breakerResetTimeoutEnvKey,
		&policy.Breaker.ResetTimeout); err != nil {
		return nil, err
	}

	return policy, policy.Validate()
}

func getCheckpointParameters(cmd *cobra.Command) (*checkpointParameters, error) {
	every := cmdutils.GetUserSetOptionalVarFromString(cmd, checkpointEveryFlagName, checkpointEveryEnvKey)

	params := &checkpointParameters{
		bucket:   cmdutils.GetUserSetOptionalVarFromString(cmd, checkpointBucketFlagName, checkpointBucketEnvKey),
		region:   cmdutils.GetUserSetOptionalVarFromString(cmd, checkpointRegionFlagName, checkpointRegionEnvKey),
		endpoint: cmdutils.GetUserSetOptionalVarFromString(cmd, checkpointEndpointFlagName, checkpointEndpointEnvKey),
		every:    defaultCheckpointEvery,
	}

	if every != "" {
		n, err := strconv.ParseUint(every, 10, 64)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("invalid value for %s [%s]", checkpointEveryFlagName, every)
		}

		params.every = n
	}

	if params.bucket != "" && params.region == "" {
		return nil, fmt.Errorf("%s is required when %s is set", checkpointRegionFlagName, checkpointBucketFlagName)
	}

	return params, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	provider := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)

	if !tracing.IsExporterSupported(provider) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", provider)
	}

	sampleRatio := 1.0

	if s := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingSampleRatioFlagName, tracingSampleRatioEnvKey); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 || v > 1 {
			return nil, fmt.Errorf("invalid value for %s [%s]", tracingSampleRatioFlagName, s)
		}

		sampleRatio = v
	}

	return &tracingParams{
		provider:    provider,
		serviceName: serviceName,
		sampleRatio: sampleRatio,
	}, nil
}

func setInt(cmd *cobra.Command, flagName, envKey string, dst *int) error {
	s := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if s == "" {
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid value for %s [%s]: %w", flagName, s, err)
	}

	*dst = v

	return nil
}

func setBool(cmd *cobra.Command, flagName, envKey string, dst *bool) error {
	s := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid value for %s [%s]: %w", flagName, s, err)
	}

	*dst = v

	return nil
}

func setDuration(cmd *cobra.Command, flagName, envKey string, dst *time.Duration) error {
	s := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if s == "" {
		return nil
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid value for %s [%s]: %w", flagName, s, err)
	}

	*dst = v

	return nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSlice(tlsCACertsFlagName, []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringP(apiKeyFlagName, "", "", apiKeyFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)

	common.Flags(startCmd)

	startCmd.Flags().String(statusStoreTypeFlagName, "", statusStoreTypeFlagUsage)
	startCmd.Flags().StringSlice(redisAddrsFlagName, []string{}, redisAddrsFlagUsage)
	startCmd.Flags().String(redisMasterNameFlagName, "", redisMasterNameFlagUsage)
	startCmd.Flags().String(redisPasswordFlagName, "", redisPasswordFlagUsage)
	startCmd.Flags().String(redisTLSFlagName, "", redisTLSFlagUsage)

	startCmd.Flags().String(chainRPCURLFlagName, "", chainRPCURLFlagUsage)
	startCmd.Flags().String(policyFileFlagName, "", policyFileFlagUsage)
	startCmd.Flags().String(anchorWorkersFlagName, "", anchorWorkersFlagUsage)
	startCmd.Flags().String(anchorMaxRetriesFlagName, "", anchorMaxRetriesFlagUsage)
	startCmd.Flags().String(anchorBaseDelayFlagName, "", anchorBaseDelayFlagUsage)
	startCmd.Flags().String(anchorMaxDelayFlagName, "", anchorMaxDelayFlagUsage)
	startCmd.Flags().String(anchorJitterFlagName, "", anchorJitterFlagUsage)
	startCmd.Flags().String(anchorAttemptTimeoutFlagName, "", anchorAttemptTimeoutFlagUsage)
	startCmd.Flags().String(breakerFailureThresholdFlagName, "", breakerFailureThresholdFlagUsage)
	startCmd.Flags().String(breakerResetTimeoutFlagName, "", breakerResetTimeoutFlagUsage)

	startCmd.Flags().String(issuerKeyFileFlagName, "", issuerKeyFileFlagUsage)
	startCmd.Flags().String(hashAlgorithmFlagName, "", hashAlgorithmFlagUsage)

	startCmd.Flags().String(checkpointBucketFlagName, "", checkpointBucketFlagUsage)
	startCmd.Flags().String(checkpointRegionFlagName, "", checkpointRegionFlagUsage)
	startCmd.Flags().String(checkpointEndpointFlagName, "", checkpointEndpointFlagUsage)
	startCmd.Flags().String(checkpointEveryFlagName, "", checkpointEveryFlagUsage)

	startCmd.Flags().StringP(metricsProviderFlagName, "", "", metricsProviderFlagUsage)
	startCmd.Flags().StringP(tracingProviderFlagName, "", "", tracingProviderFlagUsage)
	startCmd.Flags().StringP(tracingServiceNameFlagName, "", "", tracingServiceNameFlagUsage)
	startCmd.Flags().StringP(tracingSampleRatioFlagName, "", "", tracingSampleRatioFlagUsage)
}
