package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-c0x/c0x/lang/diag"
	"github.com/go-c0x/c0x/lang/scanner"
)

func TestScanIntegerOverflow(t *testing.T) {
	_, err := scanner.New([]byte("99999999999999999999")).AllTokens()
	require.NotNil(t, err)
	require.Equal(t, diag.IntegerOverflow, err.Code)
}

func TestScanHexOutOfRange(t *testing.T) {
	_, err := scanner.New([]byte("0xFFFFFFFFF")).AllTokens()
	require.NotNil(t, err)
	require.Equal(t, diag.InvalidInteger, err.Code)
}

func TestScanHexRequiresDigits(t *testing.T) {
	_, err := scanner.New([]byte("0x")).AllTokens()
	require.NotNil(t, err)
	require.Equal(t, diag.InvalidInteger, err.Code)
}

func TestScanDoubleExponentRequiresDigits(t *testing.T) {
	_, err := scanner.New([]byte("1e")).AllTokens()
	require.NotNil(t, err)
	require.Equal(t, diag.InvalidDouble, err.Code)
}
