// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presets

import "github.com/MKhiriev/clash-augmenter/models"

// Names of the builtin presets.
const (
	Regional         = "regional"
	RegionalPriority = "regional-priority"
)

// Group names used by the regional presets.
const (
	groupRegion   = "🌍特定地区"
	groupFallback = "🐟漏网之鱼"
)

var regionalGroups = []models.ProxyGroup{
	{
		Name: groupRegion,
		Type: models.GroupSelect,
		Proxies: []string{
			"🇯🇵 日本IEPL-原生",
			"🇯🇵 日本IEPL-电信",
			"🇸🇬 新加坡IEPL",
			"🇸🇬 新加坡IEPL-电信",
			"🇰🇷 韩国",
			"🇰🇷 韩国-首尔",
			"🇺🇸 美国IEPL",
			"🇺🇸 美国IEPL-电信",
		},
	},
	{
		Name: groupFallback,
		Type: models.GroupSelect,
		Proxies: []string{
			"🇨🇳 台湾IEPL",
			"🇨🇳 台湾IEPL-电信",
			"🇯🇵 日本IEPL-原生",
			"🇯🇵 日本IEPL-电信",
			"🇸🇬 新加坡IEPL",
			"🇸🇬 新加坡IEPL-电信",
			"🇰🇷 韩国",
			"🇰🇷 韩国-首尔",
			"🇺🇸 美国IEPL",
			"🇺🇸 美国IEPL-电信",
		},
	},
}

// regionalRules lists "DOMAIN-KEYWORD,chatgpt" twice; the second copy is
// shadowed by the first.
var regionalRules = []string{
	"DOMAIN-KEYWORD,tiktokcdn-," + groupRegion,
	"DOMAIN-SUFFIX,tiktok.com," + groupRegion,
	"DOMAIN-SUFFIX,tiktokcdn.com," + groupRegion,
	"DOMAIN-SUFFIX,tiktokv.com," + groupRegion,
	"DOMAIN-SUFFIX,printables.com," + groupRegion,
	"DOMAIN-SUFFIX,dmm.co.jp," + groupRegion,
	"DOMAIN-SUFFIX,dmm.com," + groupRegion,
	"DOMAIN-SUFFIX,kbjfree.com," + groupRegion,
	"DOMAIN-KEYWORD,openai," + groupRegion,
	"DOMAIN-KEYWORD,cults3d," + groupRegion,
	"PROCESS-NAME,抖音 Helper,DIRECT",
	"DOMAIN-SUFFIX,afreecatv.com," + groupRegion,
	"DOMAIN-KEYWORD,instagram," + groupRegion,
	"DOMAIN-KEYWORD,topaz-labs," + groupRegion,
	"DOMAIN-KEYWORD,chatgpt," + groupRegion,
	"DOMAIN-KEYWORD,anthropic," + groupRegion,
	"DOMAIN-KEYWORD,Claude," + groupRegion,
	"PROCESS-NAME,Claude," + groupRegion,
	"DOMAIN-KEYWORD,jav," + groupFallback,
	"DOMAIN-KEYWORD,dmm," + groupRegion,
	"DOMAIN-KEYWORD,tiktok.com," + groupRegion,
	"DOMAIN-KEYWORD,google," + groupRegion,
	"DOMAIN-KEYWORD,chatgpt," + groupRegion,
}

// Builtin returns fresh copies of the presets compiled into the binary.
func Builtin() []models.Preset {
	return []models.Preset{
		models.Preset{
			Name:        Regional,
			Description: "region-pinned groups appended after the subscription's own groups",
			GroupMerge:  models.MergeAppend,
			Groups:      regionalGroups,
			Rules:       regionalRules,
		}.Clone(),
		models.Preset{
			Name:        RegionalPriority,
			Description: "region-pinned groups placed ahead of the subscription's own groups",
			GroupMerge:  models.MergePrepend,
			Groups:      regionalGroups,
			Rules:       regionalRules,
		}.Clone(),
	}
}
