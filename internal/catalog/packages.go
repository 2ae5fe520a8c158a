// Package catalog serves the detailing package tiers the booking form
// references. Pricing is static business data; the size adjustment is
// applied per request.
package catalog

import (
	"fmt"
	"strings"

	"detailing_site_backend/platform/apperr"
)

// MaintenancePlan is the recurring pricing attached to the PLATINUM tier.
type MaintenancePlan struct {
	Weekly   int `json:"weekly"`
	Biweekly int `json:"biweekly"`
}

type tier struct {
	title string
	price int
	// sizeExempt tiers charge the base price for every vehicle size.
	sizeExempt  bool
	maintenance *MaintenancePlan
	features    []string
}

// sizeAdjust maps a vehicle size key to the surcharge on size-adjusted tiers.
var sizeAdjust = map[string]int{
	"2-door": 0,
	"4-door": 20,
	"suv":    40,
	"large":  60,
}

var tiers = []tier{
	{
		title: "BRONZE",
		price: 150,
		features: []string{
			"Exterior — Rinse",
			"Foam Cannon",
			"Hand Wash (Two Bucket Method)",
			"Hand Dry",
			"Tires Dressed",
			"Interior — Trash Removal",
			"Wipe Down All Surfaces",
			"Quick Vacuum",
			"Windows Cleaned",
		},
	},
	{
		title: "SILVER",
		price: 200,
		features: []string{
			"Exterior — Rinse",
			"Foam Cannon",
			"Hand Wash (Two Bucket Method)",
			"Hand Dry",
			"Tires Dressed",
			"Interior — Trash Removal",
			"Wipe Down All Surfaces",
			"Vacuum",
			"Leather Cleaned",
			"Cloth Seats Shampooed",
			"Windows Cleaned",
		},
	},
	{
		title: "GOLD",
		price: 250,
		features: []string{
			"Exterior — Rinse",
			"Foam Cannon",
			"Hand Wash (Two Bucket Method)",
			"Hand Dry",
			"Tires Dressed",
			"Interior — Trash Removal",
			"Wipe Down All Surfaces",
			"Vacuum",
			"Steam Cleaning",
			"Leather Cleaned & Conditioned",
			"Cloth Seats Shampooed",
			"Carpets Shampooed",
			"Door Jambs Cleaned",
			"Windows Cleaned",
		},
	},
	{
		title:       "PLATINUM (Maintenance)",
		price:       250,
		sizeExempt:  true,
		maintenance: &MaintenancePlan{Weekly: 60, Biweekly: 90},
		features: []string{
			"Exterior — Rinse",
			"Foam Cannon",
			"Hand Wash (Two Bucket Method)",
			"Hand Dry",
			"Tires Dressed",
			"Interior — Trash Removal",
			"Wipe Down All Surfaces",
			"Vacuum",
			"Steam Cleaning",
			"Leather Cleaned & Conditioned",
			"Cloth Seats Shampooed",
			"Carpets Shampooed",
			"Door Jambs Cleaned",
			"Windows Cleaned",
			"Weekly/Biweekly Wash Option",
		},
	},
}

// PackageOption is one priced tier for a specific vehicle size. Label is the
// exact string the booking form submits as the package field.
type PackageOption struct {
	Title       string           `json:"title"`
	Price       int              `json:"price"`
	Label       string           `json:"label"`
	Maintenance *MaintenancePlan `json:"maintenance,omitempty"`
	Features    []string         `json:"features"`
}

const msgUnknownSize = "unknown vehicle size"

// OptionsForSize prices every tier for the given vehicle size key.
func OptionsForSize(size string) ([]PackageOption, error) {
	adj, ok := sizeAdjust[size]
	if !ok {
		return nil, apperr.BadRequest(msgUnknownSize)
	}

	options := make([]PackageOption, 0, len(tiers))
	for _, t := range tiers {
		price := t.price
		if !t.sizeExempt {
			price += adj
		}

		label := fmt.Sprintf("%s – %s ($%d)", t.title, strings.ToUpper(size), price)
		if t.sizeExempt {
			label = fmt.Sprintf("%s – %s (Initial $%d)", t.title, strings.ToUpper(size), price)
		}

		options = append(options, PackageOption{
			Title:       t.title,
			Price:       price,
			Label:       label,
			Maintenance: t.maintenance,
			Features:    t.features,
		})
	}
	return options, nil
}
