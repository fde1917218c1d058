// Package dto defines data transfer objects for the prediction service.
package dto

// PredictRequest is the JSON body posted to the prediction endpoint.
type PredictRequest struct {
	Pixels []float64 `json:"pixels"`
}

// PredictResponse is the JSON body returned by the prediction endpoint.
type PredictResponse struct {
	Prediction string `json:"prediction"`
	ImgData    string `json:"img_data"`
}
