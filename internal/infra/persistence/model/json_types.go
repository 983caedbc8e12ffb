package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"

	"closecart/internal/domain/entity"
)

// jsonValue marshals v for a jsonb column.
func jsonValue(v any) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal jsonb column")
	}

	return string(data), nil
}

// jsonScan unmarshals a jsonb column into dst, tolerating NULL.
func jsonScan(src any, dst any) error {
	if src == nil {
		return nil
	}

	switch data := src.(type) {
	case []byte:
		return errors.Wrap(json.Unmarshal(data, dst), "unmarshal jsonb column")
	case string:
		return errors.Wrap(json.Unmarshal([]byte(data), dst), "unmarshal jsonb column")
	default:
		return errors.Errorf("unsupported jsonb source type %T", src)
	}
}

// GeoPointJSON stores an optional shop location as a GeoJSON Point in jsonb
// (`coordinates:[lng,lat]`, via the entity.LatLng converters). A shop without
// a pin stores NULL.
type GeoPointJSON struct {
	LatLng *entity.LatLng
}

func (j GeoPointJSON) Value() (driver.Value, error) {
	if j.LatLng == nil {
		return nil, nil
	}

	return jsonValue(j.LatLng)
}

func (j *GeoPointJSON) Scan(src any) error {
	if src == nil {
		j.LatLng = nil

		return nil
	}

	var point entity.LatLng
	if err := jsonScan(src, &point); err != nil {
		return err
	}
	j.LatLng = &point

	return nil
}

// SocialLinksJSON stores entity.SocialLinks as jsonb.
type SocialLinksJSON entity.SocialLinks

func (j SocialLinksJSON) Value() (driver.Value, error) { return jsonValue(j) }
func (j *SocialLinksJSON) Scan(src any) error          { return jsonScan(src, j) }

// BusinessHoursJSON stores entity.BusinessHours as jsonb.
type BusinessHoursJSON entity.BusinessHours

func (j BusinessHoursJSON) Value() (driver.Value, error) { return jsonValue(j) }
func (j *BusinessHoursJSON) Scan(src any) error          { return jsonScan(src, j) }

// StringSlice stores a list of strings as jsonb.
type StringSlice []string

func (j StringSlice) Value() (driver.Value, error) { return jsonValue(j) }
func (j *StringSlice) Scan(src any) error          { return jsonScan(src, j) }

// ChannelsJSON stores entity.NotificationChannels as jsonb.
type ChannelsJSON entity.NotificationChannels

func (j ChannelsJSON) Value() (driver.Value, error) { return jsonValue(j) }
func (j *ChannelsJSON) Scan(src any) error          { return jsonScan(src, j) }

// TogglesJSON stores entity.NotificationToggles as jsonb.
type TogglesJSON entity.NotificationToggles

func (j TogglesJSON) Value() (driver.Value, error) { return jsonValue(j) }
func (j *TogglesJSON) Scan(src any) error          { return jsonScan(src, j) }

// ChatJSON stores entity.ChatSettings as jsonb.
type ChatJSON entity.ChatSettings

func (j ChatJSON) Value() (driver.Value, error) { return jsonValue(j) }
func (j *ChatJSON) Scan(src any) error          { return jsonScan(src, j) }
