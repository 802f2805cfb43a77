//go:build !coverflowdebug

package carousel

const debugAssertions = false
