// SPDX-License-Identifier: Apache-2.0

package constants

const (
	EnvLogLevel = "POLICYCORE_LOG_LEVEL"
)
