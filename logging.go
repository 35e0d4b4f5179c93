package usbdesc

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   *zap.Logger = zap.NewNop()
)

// SetLogger installs the logger used for parse-time diagnostics
// (truncated records, trailing bytes, unrecognized descriptor types and
// subtypes, resolution-cap warnings). The default is a no-op logger so
// importing this package is silent until a caller opts in.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func diagLogger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

func logTruncated(wantLen, haveLen int, descType uint8) {
	diagLogger().Warn("descriptor truncated: not enough bytes to satisfy bLength",
		zap.Int("wantLen", wantLen), zap.Int("haveLen", haveLen), zap.Uint8("descriptorType", descType))
}

func logTrailingBytes(n int, descType uint8) {
	diagLogger().Warn("trailing bytes after decoding descriptor",
		zap.Int("trailingBytes", n), zap.Uint8("descriptorType", descType))
}

func logUnknownDescriptorType(descType uint8) {
	diagLogger().Info("unrecognized top-level descriptor type", zap.Uint8("descriptorType", descType))
}

func logUnknownSubtype(family string, class, subclass, subtype uint8) {
	diagLogger().Info("unrecognized class-specific subtype",
		zap.String("family", family), zap.Uint8("class", class), zap.Uint8("subclass", subclass), zap.Uint8("subtype", subtype))
}

func logResolutionCapExceeded(family string) {
	diagLogger().Warn("every frame in a format exceeds the resolution cap; over-cap frames are kept",
		zap.String("family", family))
}
