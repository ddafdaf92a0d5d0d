package models

// ClinicalMeasurement is the audiometric test battery submitted for a
// prediction. Field names follow the wire contract of the prediction
// service; validation ranges mirror its input schema. The advanced
// diagnostic fields are optional and default to zero when omitted from the
// request body, which happens on decode, before validation runs.
type ClinicalMeasurement struct {
	// Demographics and history (binary flags encoded as 0/1)
	Age                      int `json:"age" validate:"gte=0,lte=120"`
	Sex                      int `json:"sex" validate:"gte=0,lte=1"`
	GeneticHistory           int `json:"genetic_history" validate:"gte=0,lte=1"`
	NoiseExposureHistory     int `json:"noise_exposure_history" validate:"gte=0,lte=1"`
	Tinnitus                 int `json:"tinnitus" validate:"gte=0,lte=1"`
	VertigoDizziness         int `json:"vertigo_dizziness" validate:"gte=0,lte=1"`
	HearingDifficultyInNoise int `json:"hearing_difficulty_in_noise" validate:"gte=0,lte=1"`

	// Left ear: air conduction thresholds (dB HL)
	ACLeft250  float64 `json:"ac_l_250" validate:"gte=-10,lte=120"`
	ACLeft500  float64 `json:"ac_l_500" validate:"gte=-10,lte=120"`
	ACLeft1000 float64 `json:"ac_l_1000" validate:"gte=-10,lte=120"`
	ACLeft2000 float64 `json:"ac_l_2000" validate:"gte=-10,lte=120"`
	ACLeft4000 float64 `json:"ac_l_4000" validate:"gte=-10,lte=120"`
	ACLeft8000 float64 `json:"ac_l_8000" validate:"gte=-10,lte=120"`

	// Left ear: bone conduction thresholds (dB HL)
	BCLeft500  float64 `json:"bc_l_500" validate:"gte=-10,lte=120"`
	BCLeft1000 float64 `json:"bc_l_1000" validate:"gte=-10,lte=120"`
	BCLeft2000 float64 `json:"bc_l_2000" validate:"gte=-10,lte=120"`
	BCLeft4000 float64 `json:"bc_l_4000" validate:"gte=-10,lte=120"`

	// Left ear: speech audiometry and immittance
	SRTLeft      float64 `json:"srt_l" validate:"gte=-10,lte=120"`
	WRSLeft      float64 `json:"wrs_l" validate:"gte=0,lte=100"`
	TympTypeLeft string  `json:"tymp_type_l" validate:"required,oneof=A As Ad B C"`

	// Right ear: air conduction thresholds (dB HL)
	ACRight250  float64 `json:"ac_r_250" validate:"gte=-10,lte=120"`
	ACRight500  float64 `json:"ac_r_500" validate:"gte=-10,lte=120"`
	ACRight1000 float64 `json:"ac_r_1000" validate:"gte=-10,lte=120"`
	ACRight2000 float64 `json:"ac_r_2000" validate:"gte=-10,lte=120"`
	ACRight4000 float64 `json:"ac_r_4000" validate:"gte=-10,lte=120"`
	ACRight8000 float64 `json:"ac_r_8000" validate:"gte=-10,lte=120"`

	// Right ear: bone conduction thresholds (dB HL)
	BCRight500  float64 `json:"bc_r_500" validate:"gte=-10,lte=120"`
	BCRight1000 float64 `json:"bc_r_1000" validate:"gte=-10,lte=120"`
	BCRight2000 float64 `json:"bc_r_2000" validate:"gte=-10,lte=120"`
	BCRight4000 float64 `json:"bc_r_4000" validate:"gte=-10,lte=120"`

	// Right ear: speech audiometry and immittance
	SRTRight      float64 `json:"srt_r" validate:"gte=-10,lte=120"`
	WRSRight      float64 `json:"wrs_r" validate:"gte=0,lte=100"`
	TympTypeRight string  `json:"tymp_type_r" validate:"required,oneof=A As Ad B C"`

	// Optional advanced diagnostics: otoacoustic emissions and auditory
	// brainstem response latencies (ms)
	OAE500Present     int     `json:"oae_500_present" validate:"gte=0,lte=1"`
	OAE1000Present    int     `json:"oae_1000_present" validate:"gte=0,lte=1"`
	OAE4000Present    int     `json:"oae_4000_present" validate:"gte=0,lte=1"`
	ABRWaveILatency   float64 `json:"abr_wave_i_latency" validate:"gte=0,lte=10"`
	ABRWaveIIILatency float64 `json:"abr_wave_iii_latency" validate:"gte=0,lte=10"`
	ABRWaveVLatency   float64 `json:"abr_wave_v_latency" validate:"gte=0,lte=10"`
	ABRWaveVAbsent    int     `json:"abr_wave_v_absent" validate:"gte=0,lte=1"`
}
