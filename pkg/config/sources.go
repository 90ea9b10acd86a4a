// ABOUTME: Built-in upstream source list used when the configuration names none
// ABOUTME: Covers gaming news, emulation and driver release feeds, and video channels

package config

// DefaultSources returns a fresh copy of the built-in source list
func DefaultSources() SourcesConfig {
	return SourcesConfig{
		Syndication: []SyndicationSource{
			{ID: "rps", URL: "https://www.rockpapershotgun.com/feed/news", Title: "Gaming News", Subtitle: "Rock Paper Shotgun"},
		},
		Video: []VideoSource{
			{ID: "etaprime", ChannelID: "UC_0CVCfC_3iuHqmyClu59Uw", Title: "Gaming & Emulation", Subtitle: "ETA PRIME"},
			{ID: "ryanretro", ChannelID: "UCh9GxjM-FNuSWv7xqn3UKVw", Title: "Retro Gaming", Subtitle: "Ryan Retro"},
		},
		Release: []ReleaseSource{
			// Emulation and translation layers
			{ID: "fex-emu", Owner: "FEX-Emu", Repo: "FEX", Subtitle: "FEX-Emu"},
			{ID: "box64", Owner: "ptitSeb", Repo: "box64", Subtitle: "Box64"},
			{ID: "box86", Owner: "ptitSeb", Repo: "box86", Subtitle: "Box86"},

			// Windows on Android
			{ID: "winlator", Owner: "brunodev85", Repo: "winlator", Subtitle: "Winlator"},
			{ID: "mobox", Owner: "olegos2", Repo: "mobox", Subtitle: "Mobox"},

			// Wine and Proton
			{ID: "wine-ge", Owner: "GloriousEggroll", Repo: "wine-ge-custom", Subtitle: "Wine-GE"},
			{ID: "proton-ge", Owner: "GloriousEggroll", Repo: "proton-ge-custom", Subtitle: "Proton-GE"},
			{ID: "proton", Owner: "ValveSoftware", Repo: "Proton", Subtitle: "Valve Proton"},

			// DirectX translation
			{ID: "dxvk", Owner: "doitsujin", Repo: "dxvk", Subtitle: "DXVK"},
			{ID: "vkd3d-proton", Owner: "HansKristian-Work", Repo: "vkd3d-proton", Subtitle: "VKD3D-Proton"},

			// GPU drivers
			{ID: "mesa-turnip-builder", Owner: "v3kt0r-87", Repo: "Mesa-Turnip-Builder", Subtitle: "Mesa Turnip Builder"},
			{ID: "adreno-tools-drivers", Owner: "K11MCH1", Repo: "AdrenoToolsDrivers", Subtitle: "Adreno Tools Drivers"},
			{ID: "qualcomm-adreno-driver", Owner: "zoerakk", Repo: "qualcomm-adreno-driver", Subtitle: "Qualcomm Adreno (8 Elite)"},
			{ID: "freedreno-turnip-ci", Owner: "Weab-chan", Repo: "freedreno_turnip-CI", Subtitle: "Freedreno Turnip CI"},
		},
	}
}
