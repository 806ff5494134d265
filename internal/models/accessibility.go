package models

import (
	"math"
	"strconv"
	"strings"
)

// AccessibilityProfile é 1:1 com Company; company_id é PK e FK ao mesmo tempo.
type AccessibilityProfile struct {
	CompanyID int64 `gorm:"primaryKey;autoIncrement:false" json:"company_id"`

	// estrutura física
	HallwaysMin90cm     bool `gorm:"column:hallways_min_90cm;not null" json:"hallways_min_90cm"`
	Ramp                bool `gorm:"not null" json:"ramp"`
	Door80cm            bool `gorm:"column:door_80cm;not null" json:"door_80cm"`
	NonSlipFloors       bool `gorm:"not null" json:"non_slip_floors"`
	AccessibleBathroom  bool `gorm:"not null" json:"accessible_bathroom"`
	AdaptedTablesChairs bool `gorm:"not null" json:"adapted_tables_chairs"`
	Elevator            bool `gorm:"not null" json:"elevator"`

	// adaptabilidade
	BrailleSignage    bool `gorm:"not null" json:"braille_signage"`
	ColorContrast     bool `gorm:"not null" json:"color_contrast"`
	PodotactileGuides bool `gorm:"not null" json:"podotactile_guides"`
	EmergencyAlarms   bool `gorm:"not null" json:"emergency_alarms"`
	HearingAidSystem  bool `gorm:"not null" json:"hearing_aid_system"`

	AdaptedBathroomQuantity   *int    `json:"adapted_bathroom_quantity"`
	AdaptedBathroomDetails    *string `json:"adapted_bathroom_details"`
	PriorityAttentionType     *string `json:"priority_attention_type"`
	PriorityAttentionSchedule *string `json:"priority_attention_schedule"`
	OtherServices             *string `json:"other_services"`
}

func (AccessibilityProfile) TableName() string { return "accessibility_profiles" }

// Chaves aceitas nos formulários: nome canônico (coluna) e nome em português.
type (
	AccessibilityFlags   map[string]bool
	AccessibilityDetails map[string]any
)

var flagAliases = map[string][]string{
	"hallways_min_90cm":     {"corredores_min_90cm", "corredores_90cm"},
	"ramp":                  {"rampa"},
	"door_80cm":             {"porta_80cm", "portas_80cm"},
	"non_slip_floors":       {"piso_antiderrapante"},
	"accessible_bathroom":   {"banheiro_acessivel"},
	"adapted_tables_chairs": {"mesas_cadeiras_adaptadas"},
	"elevator":              {"elevador"},
	"braille_signage":       {"sinalizacao_braille"},
	"color_contrast":        {"contraste_cores"},
	"podotactile_guides":    {"piso_podotatil", "guias_podotateis"},
	"emergency_alarms":      {"alarmes_emergencia"},
	"hearing_aid_system":    {"sistema_auditivo", "aparelho_auditivo"},
}

var detailAliases = map[string][]string{
	"adapted_bathroom_quantity":   {"quantidade_banheiros_adaptados"},
	"adapted_bathroom_details":    {"detalhes_banheiros_adaptados"},
	"priority_attention_type":     {"tipo_atendimento_prioritario"},
	"priority_attention_schedule": {"horario_atendimento_prioritario"},
	"other_services":              {"outros_servicos"},
}

// NewAccessibilityProfile monta o perfil completo a partir do que veio do
// cliente. Flag ausente vira false, detalhe ausente (ou vazio) vira null;
// chaves desconhecidas são ignoradas.
func NewAccessibilityProfile(companyID int64, flags AccessibilityFlags, details AccessibilityDetails) AccessibilityProfile {
	return AccessibilityProfile{
		CompanyID: companyID,

		HallwaysMin90cm:     flags.get("hallways_min_90cm"),
		Ramp:                flags.get("ramp"),
		Door80cm:            flags.get("door_80cm"),
		NonSlipFloors:       flags.get("non_slip_floors"),
		AccessibleBathroom:  flags.get("accessible_bathroom"),
		AdaptedTablesChairs: flags.get("adapted_tables_chairs"),
		Elevator:            flags.get("elevator"),

		BrailleSignage:    flags.get("braille_signage"),
		ColorContrast:     flags.get("color_contrast"),
		PodotactileGuides: flags.get("podotactile_guides"),
		EmergencyAlarms:   flags.get("emergency_alarms"),
		HearingAidSystem:  flags.get("hearing_aid_system"),

		AdaptedBathroomQuantity:   details.intValue("adapted_bathroom_quantity"),
		AdaptedBathroomDetails:    details.text("adapted_bathroom_details"),
		PriorityAttentionType:     details.text("priority_attention_type"),
		PriorityAttentionSchedule: details.text("priority_attention_schedule"),
		OtherServices:             details.text("other_services"),
	}
}

func (f AccessibilityFlags) get(name string) bool {
	if v, ok := f[name]; ok {
		return v
	}
	for _, alias := range flagAliases[name] {
		if v, ok := f[alias]; ok {
			return v
		}
	}
	return false
}

func (d AccessibilityDetails) lookup(name string) any {
	if v, ok := d[name]; ok && v != nil {
		return v
	}
	for _, alias := range detailAliases[name] {
		if v, ok := d[alias]; ok && v != nil {
			return v
		}
	}
	return nil
}

func (d AccessibilityDetails) text(name string) *string {
	var s string
	switch v := d.lookup(name).(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func (d AccessibilityDetails) intValue(name string) *int {
	var n int
	switch v := d.lookup(name).(type) {
	case int:
		n = v
	case int32:
		n = int(v)
	case int64:
		n = int(v)
	case *int:
		if v == nil {
			return nil
		}
		n = *v
	case float64: // números vindos de encoding/json
		if v != math.Trunc(v) {
			return nil
		}
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if n < 0 {
		return nil
	}
	return &n
}
