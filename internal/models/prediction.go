package models

// PredictionOutcome is the structured result returned by the prediction
// service. It is relayed to the client exactly as received.
type PredictionOutcome struct {
	HearingLoss         string           `json:"hearing_loss"`
	HearingLossType     string           `json:"hearing_loss_type"`
	HearingLossSeverity string           `json:"hearing_loss_severity"`
	ConfidenceScores    ConfidenceScores `json:"confidence_scores"`
	ClinicalSummary     ClinicalSummary  `json:"clinical_summary"`
}

// ConfidenceScores holds one score in [0, 1] per predicted label.
type ConfidenceScores struct {
	HearingLoss         float64 `json:"hearing_loss"`
	HearingLossType     float64 `json:"hearing_loss_type"`
	HearingLossSeverity float64 `json:"hearing_loss_severity"`
}

// ClinicalSummary carries the derived audiometric measures and the ordered
// clinical notes produced alongside a prediction.
type ClinicalSummary struct {
	PTALeft         float64  `json:"pta_left"`
	PTARight        float64  `json:"pta_right"`
	Asymmetry       float64  `json:"asymmetry"`
	AirBoneGapLeft  float64  `json:"air_bone_gap_left"`
	AirBoneGapRight float64  `json:"air_bone_gap_right"`
	ClinicalNotes   []string `json:"clinical_notes"`
}
