package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{[]string{"5"}, 0, "120\n", ""},
		{[]string{"0"}, 0, "1\n", ""},
		{[]string{"--log-level", "error", "20"}, 0, "2432902008176640000\n", ""},
		{[]string{}, 2, "", "usage: factorial [flags] N"},
		{[]string{"1", "2"}, 2, "", "usage: factorial [flags] N"},
		{[]string{"five"}, 2, "", "five is not an integer"},
		{[]string{"--", "-3"}, 2, "", "factorial is undefined for negative numbers"},
		{[]string{"--log-level", "loud", "3"}, 2, "", "log_level"},
	}
	for _, test := range testCases {
		var stdout, stderr bytes.Buffer
		code := run(test.args, &stdout, &stderr)
		assert.Equal(t, test.code, code, test.args)
		assert.Equal(t, test.stdout, stdout.String(), test.args)
		assert.Contains(t, stderr.String(), test.stderr, test.args)
	}
}
