package config

import (
	"os"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
)

// Portal describes the customer-facing pages: which companies own a
// dedicated dashboard and where the embedded third-party widgets live.
type Portal struct {
	SurveyURL   string      `yaml:"surveyURL"`
	CaseFormURL string      `yaml:"caseFormURL"`
	Dashboards  []Dashboard `yaml:"dashboards"`
}

// Dashboard is a company-specific landing page. Company is matched against
// the user's company name exactly.
type Dashboard struct {
	Company      string   `yaml:"company"`
	Variant      string   `yaml:"variant"`
	Title        string   `yaml:"title"`
	Subtitle     string   `yaml:"subtitle"`
	MonitorURL   string   `yaml:"monitorURL"`
	MonitorTitle string   `yaml:"monitorTitle"`
	Services     []string `yaml:"services"`
	WhatsApp     string   `yaml:"whatsapp"`
	Phone        string   `yaml:"phone"`
}

const (
	defaultSurveyURL  = "https://forms.office.com/Pages/ResponsePage.aspx?id=Mjp2GCFNwEaaUZXaQqFU_JIeVk6DjZJEuiwrS7wW88lUQVg0MVdNVVhBWUpYRFRMMkpRVU0zWEYyMy4u&embed=true"
	defaultMonitorURL = "https://www.site24x7.com/public/dashboard/Q91tUFvelsyHQUbx2OtQL6PBwafuGbn77TwabDuZSs-JjrX88J2LlIvIg39uhHkn8BvDdSSjwBZhC88MuMbr9zF1IWkEtQwOfuVLPrO2GKMXEIJtaiOkIQvMJVtO1C7-"
)

func DefaultPortal() Portal {
	return Portal{
		SurveyURL: defaultSurveyURL,
		Dashboards: []Dashboard{
			{
				Company:      "Congelados",
				Variant:      "congelados",
				Title:        "Estado de Servicios",
				Subtitle:     "Congelados Express",
				MonitorURL:   defaultMonitorURL,
				MonitorTitle: "Site24x7 - Servidor Principal",
				Services:     []string{"Visita técnica", "Soporte remoto", "Servicios de seguridad", "Equipos en taller"},
				WhatsApp:     "https://wa.me/18494524373",
				Phone:        "809-226-1628",
			},
		},
	}
}

// LoadPortal reads a YAML portal file. Fields left empty keep their defaults;
// a non-empty dashboards list replaces the default one.
func LoadPortal(path string) (Portal, error) {
	p := DefaultPortal()

	file, err := os.Open(path)
	if err != nil {
		return p, errors.Wrap(err, "open portal config")
	}
	defer file.Close()

	var override Portal
	if err := yaml.NewDecoder(file).Decode(&override); err != nil {
		return p, errors.Wrap(err, "decode portal config")
	}

	if override.SurveyURL != "" {
		p.SurveyURL = override.SurveyURL
	}
	if override.CaseFormURL != "" {
		p.CaseFormURL = override.CaseFormURL
	}
	if len(override.Dashboards) > 0 {
		for i, d := range override.Dashboards {
			if d.Company == "" || d.Variant == "" {
				return p, errors.Errorf("dashboard #%d: company and variant are required", i+1)
			}
			if d.Variant == "generic" {
				return p, errors.Errorf("dashboard #%d: variant %q is reserved", i+1, d.Variant)
			}
		}
		p.Dashboards = override.Dashboards
	}
	return p, nil
}
