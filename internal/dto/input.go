package dto

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ScheduleRequestFromJSON loads a create-schedule payload from a file, going
// through map[string]any so the mapstructure field mapping matches the wire
// contract regardless of key casing.
func ScheduleRequestFromJSON(file string) (CreateScheduleRequest, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return CreateScheduleRequest{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return CreateScheduleRequest{}, err
	}

	var request CreateScheduleRequest
	if err := mapstructure.Decode(raw, &request); err != nil {
		return CreateScheduleRequest{}, err
	}
	return request, nil
}

// DistributeRequestFromJSON loads a distribute-groups payload from a file.
func DistributeRequestFromJSON(file string) (DistributeGroupsRequest, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return DistributeGroupsRequest{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return DistributeGroupsRequest{}, err
	}

	var request DistributeGroupsRequest
	if err := mapstructure.Decode(raw, &request); err != nil {
		return DistributeGroupsRequest{}, err
	}
	return request, nil
}
