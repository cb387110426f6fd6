package domain

import (
	"errors"
	"strings"
)

var ErrSettingsNotFound = errors.New("settings not found")

const (
	DefaultAppName = "PW Quantum"
	telegramBase   = "https://t.me/"
	unavailableRef = "#"
)

// ServerInfo is the branding and contact metadata shown on public pages.
// Every field is optional; an absent field disables the matching feature.
type ServerInfo struct {
	WebName           string `json:"webName,omitempty"           bson:"webName,omitempty"`
	TgChannel         string `json:"tg_channel,omitempty"        bson:"tg_channel,omitempty"`
	TgUsername        string `json:"tg_username,omitempty"       bson:"tg_username,omitempty"`
	TgBot             string `json:"tg_bot,omitempty"            bson:"tg_bot,omitempty"`
	SidebarLogoURL    string `json:"sidebarLogoUrl,omitempty"    bson:"sidebarLogoUrl,omitempty"`
	SidebarTitle      string `json:"sidebarTitle,omitempty"      bson:"sidebarTitle,omitempty"`
	IsDirectLoginOpen *bool  `json:"isDirectLoginOpen,omitempty" bson:"isDirectLoginOpen,omitempty"`
}

// Merge returns a copy of s where every empty field is filled from fallback.
func (s ServerInfo) Merge(fallback ServerInfo) ServerInfo {
	out := s
	pick := func(v *string, fb string) {
		if *v == "" {
			*v = fb
		}
	}
	pick(&out.WebName, fallback.WebName)
	pick(&out.TgChannel, fallback.TgChannel)
	pick(&out.TgUsername, fallback.TgUsername)
	pick(&out.TgBot, fallback.TgBot)
	pick(&out.SidebarLogoURL, fallback.SidebarLogoURL)
	pick(&out.SidebarTitle, fallback.SidebarTitle)
	if out.IsDirectLoginOpen == nil {
		out.IsDirectLoginOpen = fallback.IsDirectLoginOpen
	}
	return out
}

// Link is a contact affordance; Href is "#" when the link is unavailable.
type Link struct {
	Available bool   `json:"available"`
	Href      string `json:"href"`
}

// ContactLinks is the resolved view of ServerInfo used by the contact page.
type ContactLinks struct {
	AppName      string `json:"appName"`
	LogoURL      string `json:"logoUrl,omitempty"`
	SidebarTitle string `json:"sidebarTitle,omitempty"`
	Channel      Link   `json:"channel"`
	Owner        Link   `json:"owner"`
	Bot          Link   `json:"bot"`
	DirectLogin  bool   `json:"directLogin"`
}

// ContactLinks resolves s into links. fallbackName is used when WebName is
// empty, and DefaultAppName when both are.
func (s ServerInfo) ContactLinks(fallbackName string) ContactLinks {
	name := s.WebName
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		name = DefaultAppName
	}
	return ContactLinks{
		AppName:      name,
		LogoURL:      s.SidebarLogoURL,
		SidebarTitle: s.SidebarTitle,
		Channel:      TelegramLink(s.TgChannel),
		Owner:        TelegramLink(s.TgUsername),
		Bot:          TelegramLink(s.TgBot),
		DirectLogin:  s.IsDirectLoginOpen != nil && *s.IsDirectLoginOpen,
	}
}

// TelegramLink builds a t.me link for handle, dropping the first "@".
func TelegramLink(handle string) Link {
	if handle == "" {
		return Link{Href: unavailableRef}
	}
	return Link{Available: true, Href: telegramBase + strings.Replace(handle, "@", "", 1)}
}
