package itamae

// mcsCoding names, per Std Table 20-30 thru 20-35, the modulation and
// coding rate for the low three bits of an MCS index; the index's high
// bits select the spatial-stream count.
var mcsCoding = [8]string{
	"BPSK 1/2",
	"QPSK 1/2",
	"QPSK 3/4",
	"16-QAM 1/2",
	"16-QAM 3/4",
	"64-QAM 2/3",
	"64-QAM 3/4",
	"64-QAM 5/6",
}

// mcsRate[index][bandwidth][gi] is the data rate in Mb/s, per Std Tables
// 20-30 thru 20-37. gi 0 is long guard interval, 1 is short. Reproduced
// bit-for-bit from the source catalog (mcs.py MCS_HT_RATES); does not
// cover VHT/802.11ac.
var mcsRate = [32]map[int][2]float64{
	{20: {6.5, 7.2}, 40: {13.5, 15}},        // 0
	{20: {13, 14.4}, 40: {27, 30}},          // 1
	{20: {19.5, 21.7}, 40: {40.5, 45}},      // 2
	{20: {26, 28.9}, 40: {54, 60}},          // 3
	{20: {39, 43.3}, 40: {81, 90}},          // 4
	{20: {52, 57.8}, 40: {108, 120}},        // 5
	{20: {58.5, 65}, 40: {121.5, 135}},      // 6
	{20: {65, 72.2}, 40: {135, 150}},        // 7
	{20: {13, 14.4}, 40: {27, 30}},          // 8
	{20: {26, 28.9}, 40: {54, 60}},          // 9
	{20: {39, 43.3}, 40: {81, 90}},          // 10
	{20: {52, 57.8}, 40: {108, 120}},        // 11
	{20: {78, 86.7}, 40: {162, 180}},        // 12
	{20: {104, 115.6}, 40: {216, 240}},      // 13
	{20: {117, 130.3}, 40: {243, 270}},      // 14
	{20: {130, 144.4}, 40: {270, 300}},      // 15
	{20: {19.5, 21.7}, 40: {40.5, 45}},      // 16
	{20: {39, 43.3}, 40: {81, 90}},          // 17
	{20: {58.5, 65}, 40: {121.5, 135}},      // 18
	{20: {78, 86.7}, 40: {162, 180}},        // 19
	{20: {117, 130}, 40: {243, 270}},        // 20
	{20: {156, 173.3}, 40: {324, 360}},      // 21
	{20: {175.5, 195}, 40: {364.5, 405}},    // 22
	{20: {195, 216.7}, 40: {405, 450}},      // 23
	{20: {26, 28.9}, 40: {54, 60}},          // 24
	{20: {52, 57.8}, 40: {108, 120}},        // 25
	{20: {78, 86.7}, 40: {162, 180}},        // 26
	{20: {104, 115.6}, 40: {216, 240}},      // 27
	{20: {156, 173.3}, 40: {324, 360}},      // 28
	{20: {208, 231.1}, 40: {432, 480}},      // 29
	{20: {234, 260}, 40: {486, 540}},        // 30
	{20: {260, 288.9}, 40: {540, 600}},      // 31
}

// MCSCoding returns the modulation/coding-rate description and spatial
// stream count for MCS index i (0-31).
func MCSCoding(i int) (coding string, streams int, ok bool) {
	if i < 0 || i > 31 {
		return "", 0, false
	}
	return mcsCoding[i%8], i/8 + 1, true
}

// MCSRate returns the data rate in Mb/s for MCS index i (0-31), channel
// bandwidth w (20 or 40), and guard interval gi (0 long, 1 short). ok is
// false for any tuple not in the table (e.g. an unsupported bandwidth).
func MCSRate(i, w, gi int) (rate float64, ok bool) {
	if i < 0 || i > 31 || gi < 0 || gi > 1 {
		return 0, false
	}
	pair, present := mcsRate[i][w]
	if !present {
		return 0, false
	}
	return pair[gi], true
}
