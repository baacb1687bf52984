package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownModels(t *testing.T) {
	cases := []struct {
		model      uint32
		dataOffset int
		recordSize int
		hasHeader  bool
		hasAmp     bool
		hasLD      bool
		hasZA      bool
	}{
		{DMC4000, 82, AxisRecordMax, true, true, true, true},
		{DMC52000, 82, AxisRecordMax, true, true, true, true},
		{DMC1806, 78, AxisRecordNew, false, false, true, true},
		{DMC2103, 44, AxisRecordOld, true, false, false, false},
		{DMC1802, 40, AxisRecordOld, false, false, false, false},
		{DMC30000, 38, AxisRecordMax, true, true, true, true},
	}
	for _, c := range cases {
		p, err := Lookup(c.model)
		require.NoError(t, err, "model %d", c.model)
		require.Equal(t, c.dataOffset, p.AxisDataOffset, "model %d", c.model)
		require.Equal(t, c.recordSize, p.AxisRecordSize, "model %d", c.model)
		require.Equal(t, c.hasHeader, p.HasHeader, "model %d", c.model)
		require.Equal(t, c.hasAmp, p.HasAmpStatus(), "model %d", c.model)
		require.Equal(t, c.hasLD, p.HasLimitDisable, "model %d", c.model)
		require.Equal(t, c.hasZA, p.HasUserData, "model %d", c.model)
	}
}

func TestLookupUnknownModel(t *testing.T) {
	_, err := Lookup(9999)
	require.ErrorIs(t, err, ErrUnknownModel)
}

func TestMinRecordSize(t *testing.T) {
	p, err := Lookup(DMC4000)
	require.NoError(t, err)
	// Размер зависит от числа каналов, а не от числа логических осей.
	require.Equal(t, 82+3*36, p.MinRecordSize(3))

	p, err = Lookup(DMC1802)
	require.NoError(t, err)
	require.Equal(t, 40+28, p.MinRecordSize(1))
}

func TestHasAnalogIn(t *testing.T) {
	for _, m := range Models() {
		p, err := Lookup(m)
		require.NoError(t, err)
		require.Equal(t, m != DMC1802, p.HasAnalogIn(), "model %d", m)
	}
}

func TestDetectFromRevision(t *testing.T) {
	cases := []struct {
		revision string
		want     uint32
	}{
		{"DMC4020 Rev 1.3a", DMC4000},
		{"DMC4103 Rev 1.0", DMC4000},
		{"DMC500x0 Rev 1.2", DMC4000},
		{"DMC52000 Rev 1.0", DMC52000},
		{"DMC30010 Rev 1.2b", DMC30000},
		{"DMC2103 Rev 1.0", DMC2103},
		{"DMC2102 Rev 1.0", DMC2103},
		{"DMC1806 Rev 1.1", DMC1806},
		{"DMC1802 Rev 1.1", DMC1802},
		{"Galil Motion Control, DMC4020 Rev 1.3a", DMC4000},
		{"unknown controller", 0},
		{"DMC9999", 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, DetectFromRevision(c.revision), "revision %q", c.revision)
	}
}
