package catalog

import (
	"fmt"

	"reltag/internal/pattern"
)

type definition struct {
	label      string
	fragment   string
	suppresses []string
}

type table struct {
	name        Name
	cardinality Cardinality
	kind        pattern.Kind
	defs        []definition
}

// Built-in tables in evaluation order. Group lists inside the language table
// are curated data and change often; the ordering (remux tiers, blu-ray
// tiers, web tiers, scene, flagged groups, then audio markers and language
// names) is what the sorter depends on.
var builtin = []table{
	{
		name:        Resolution,
		cardinality: SingleBest,
		kind:        pattern.KindGeneric,
		defs: []definition{
			{label: "2160p", fragment: `(?:bd|hd|m)?(?:4k|2160(?:p|i)?)|u(?:ltra)?[ .\-_]?hd|3840\s?x\s?\d{4}`},
			{label: "1440p", fragment: `(?:bd|hd|m)?1440(?:p|i)?|2k|w?q(?:uad)?[ .\-_]?hd|2560\s?x\s?\d{4}`},
			{label: "1080p", fragment: `(?:bd|hd|m)?1080(?:p|i)?|f(?:ull)?[ .\-_]?hd|1920\s?x\s?\d{3,4}`},
			{label: "720p", fragment: `(?:bd|hd|m)?720(?:p|i)?|hd|1280\s?x\s?\d{3,4}`},
			{label: "480p", fragment: `(?:bd|hd|m)?480(?:p|i)?|sd`},
		},
	},
	{
		name:        Quality,
		cardinality: SingleBest,
		kind:        pattern.KindGeneric,
		defs: []definition{
			// A remux needs a source term on either side of "remux", or a
			// bd/br/uhd prefix glued to it.
			{label: "BluRay REMUX", fragment: `(?<=remux.*)blu[ .\-_]?ray|blu[ .\-_]?ray(?=.*remux)|(?:bd|br|b|uhd)[ .\-_]?remux`},
			{label: "BluRay", fragment: `blu[ .\-_]?ray|(?:bd|br|b)[ .\-_]?(?:rip|r)?(?![ .\-_]?remux)`},
			{label: "WEB-DL", fragment: `web[ .\-_]?(?:dl)?(?![ .\-_]?(?:dlrip|cam))`},
			{label: "WEBRip", fragment: `web[ .\-_]?rip`},
			{label: "HDRip", fragment: `hd[ .\-_]?rip|web[ .\-_]?dl[ .\-_]?rip`},
			{label: "HC HD-Rip", fragment: `hc|hd[ .\-_]?rip`},
			{label: "DVDRip", fragment: `dvd[ .\-_]?(?:rip|mux|r|full|5|9)`},
			{label: "HDTV", fragment: `(?:hd|pd)tv|tv[ .\-_]?rip|hdtv[ .\-_]?rip|dsr(?:ip)?|sat[ .\-_]?rip`},
			{label: "CAM", fragment: `cam|hdcam|cam[ .\-_]?rip`},
			{label: "TS", fragment: `telesync|ts|hd[ .\-_]?ts|pdvd|predvd(?:rip)?`},
			{label: "TC", fragment: `telecine|tc|hd[ .\-_]?tc`},
			{label: "SCR", fragment: `(?:(?:dvd|bd|web|hd)?[ .\-_]?)?scr(?:eener)?`},
		},
	},
	{
		name:        VisualTags,
		cardinality: CollectAll,
		kind:        pattern.KindGeneric,
		defs: []definition{
			{label: "10bit", fragment: `10[ .\-_]?bit`},
			{label: "HDR10+", fragment: `hdr[ .\-_]?10[ .\-_]?(?:plus|\+)`, suppresses: []string{"HDR10", "HDR"}},
			{label: "HDR10", fragment: `hdr[ .\-_]?10(?![ .\-_]?(?:\+|plus))`, suppresses: []string{"HDR"}},
			{label: "HDR", fragment: `hdr(?![ .\-_]?10)(?![ .\-_]?(?:\+|plus))`},
			{label: "DV", fragment: `do?(?:lby)?[ .\-_]?vi?(?:sion)?(?:[ .\-_]?atmos)?|dv`},
			{label: "3D", fragment: `(?:bd)?(?:3|three)[ .\-_]?d(?:imension)?(?:al)?`},
			{label: "IMAX", fragment: `imax`},
			{label: "AI", fragment: `ai[ .\-_]?(?:upscale|enhanced|remaster)?`},
			{label: "SDR", fragment: `sdr`},
		},
	},
	{
		name:        AudioTags,
		cardinality: CollectAll,
		kind:        pattern.KindGeneric,
		defs: []definition{
			{label: "Atmos", fragment: `atmos`},
			{label: "DD+", fragment: `d(?:olby)?[ .\-_]?d(?:igital)?[ .\-_]?(?:p(?:lus)?|\+)(?:[ .\-_]?(?:5[ .\-_]?1|7[ .\-_]?1))?|e[ .\-_]?ac[ .\-_]?3`, suppresses: []string{"DD"}},
			{label: "DD", fragment: `d(?:olby)?[ .\-_]?d(?:igital)?(?:[ .\-_]?(?:5[ .\-_]?1|7[ .\-_]?1))?|(?<!e[ .\-_]?)ac[ .\-_]?3`},
			{label: "DTS-HD MA", fragment: `dts[ .\-_]?hd[ .\-_]?ma`, suppresses: []string{"DTS-HD", "DTS"}},
			{label: "DTS-HD", fragment: `dts[ .\-_]?hd(?![ .\-_]?ma)`, suppresses: []string{"DTS"}},
			{label: "DTS", fragment: `dts(?![ .\-_]?hd[ .\-_]?ma|[ .\-_]?hd)`},
			{label: "TrueHD", fragment: `true[ .\-_]?hd`},
			{label: "5.1", fragment: `(?:d(?:olby)?[ .\-_]?d(?:igital)?[ .\-_]?(?:p(?:lus)?|\+)?)?5[ .\-_]?1(?:ch)?`},
			{label: "7.1", fragment: `(?:d(?:olby)?[ .\-_]?d(?:igital)?[ .\-_]?(?:p(?:lus)?|\+)?)?7[ .\-_]?1(?:ch)?`},
			{label: "AAC", fragment: `q?aac(?:[ .\-_]?2)?`},
			{label: "FLAC", fragment: `flac(?:[ .\-_]?(?:lossless|2\.0|x[2-4]))?`},
		},
	},
	{
		name:        Encodes,
		cardinality: CollectAll,
		kind:        pattern.KindGeneric,
		defs: []definition{
			{label: "HEVC", fragment: `hevc[ .\-_]?(?:10)?|[xh][ .\-_]?265`},
			{label: "AVC", fragment: `avc|[xh][ .\-_]?264`},
			{label: "AV1", fragment: `av1`},
			{label: "Xvid", fragment: `xvid`},
			{label: "DivX", fragment: `divx|dvix`},
			{label: "H-OU", fragment: `h?(?:alf)?[ .\-_]?(?:ou|over[ .\-_]?under)`},
			{label: "H-SBS", fragment: `h?(?:alf)?[ .\-_]?(?:sbs|side[ .\-_]?by[ .\-_]?side)`},
		},
	},
	{
		name:        Languages,
		cardinality: CollectAll,
		kind:        pattern.KindLanguage,
		defs: []definition{
			{label: "Remux_T1", fragment: `remux.*(?:3L|BiZKiT|BLURANiUM|BMF|CiNEPHiLES|FraMeSToR|PmP|WiLDCAT|ZQ)`},
			{label: "Remux_T2", fragment: `remux.*(?:Flights|NCmt|playBD|SiCFoI|SURFINBIRD|TEPES|decibeL|EPSiLON|HiFi|KRaLiMaRKo|PTer|TRiToN)`},
			{label: "Remux_T3", fragment: `remux.*(?:ATELiER|iFT|NTb|PTP|SumVision|TOA)`},
			{label: "Bluray_T1", fragment: `blu[\-_]?ray.*(?:BBQ|BMF|c0kE|Chotab|CRiSC|CtrlHD|Dariush|decibeL|D-Z0N3|DON|EbP|EDPH|Geek|LolHD|MainFrame|NCmt|NTb|PTer|TayTO|TDD|TnP|VietHD|ZoroSenpai|W4NK3R|ZQ)`},
			{label: "Bluray_T2", fragment: `blu[\-_]?ray.*(?:EA|HiDt|HiSD|HQMUX|iFT|QOQ|SA89|sbR)`},
			{label: "Bluray_T3", fragment: `blu[\-_]?ray.*(?:ATELiER|BHDStudio|hallowed|HiFi|HONE|LoRD|SPHD|WEBDV|playHD)`},
			{label: "Web_T1", fragment: `web[\-_.]?(?:dl|rip).*(?:ABBIE|AJP69|APEX|PAXA|PEXA|XEPA|BLUTONiUM|CasStudio|CMRG|CRFW|CRUD|CtrlHD|FLUX|GNOME|HONE|KiNGS|Kitsune|monkee|NOSiViD|NTb|NTG|QOQ|RTN|SiC|TEPES|T6D|TOMMY|ViSUM)`},
			{label: "Web_T2", fragment: `web[\-_.]?(?:dl|rip).*(?:3cTWeB|BTW|Cinefeel|CiT|Coo7|dB|DEEP|END|ETHiCS|FC|Flights|iJP|iKA|iT00NZ|JETIX|KHN|KiMCHI|LAZY|MiU|MZABI|NPMS|NYH|orbitron|PHOENiX|playWEB|PSiG|ROCCaT|RTFM|SA89|SbR|SDCC|SIGMA|SMURF|SPiRiT|TVSmash|WELP|XEBEC|4KBEC|CEBEX)`},
			{label: "Web_T3", fragment: `web[\-_.]?(?:dl|rip).*(?:BYNDR|DRACULA|GNOMiSSiON|NINJACENTRAL|ROCCaT|SiGMA|SLiGNOME|SwAgLaNdEr|T4H|ViSiON)`},
			{label: "Web_Scene", fragment: `web[\-_.]?(?:dl|rip).*(?:DEFLATE|INFLATE)`},
			{label: "BAD", fragment: `SWTYBLZ|TeeWee|Will1869|24xHD|41RGB|4K4U|AROMA|aXXo|AZAZE|BARC0DE|BAUCKLEY|BdC|beAst|BTM|C1NEM4|C4K|CDDHD|CHAOS|CHD|CiNE|COLLECTiVE|CREATiVE24|CrEwSaDe|CTFOH|d3g|DDR|DNL|EPiC|EuReKA|FaNGDiNG0|Feranki1980|FGT|FMD|FRDS|FZHD|GalaxyRG|GHD|GPTHD|HDS|HDTime|HDWinG|iNTENSO|iPlanet|iVy|jennaortega|JFF|KC|KiNGDOM|KIRA|L0SERNIGHT|LAMA|Leffe|Liber8|LiGaS|LUCY|MarkII|MeGusta|mHD|mSD|MTeam|MySiLU|NhaNc3|nHD|nikt0|nSD|OFT|Pahe|PATOMiEL|PRODJi|PSA|PTNK|RARBG|RDN|Rifftrax|RU4HD|SANTi|Scene|ShieldBearer|STUTTERSHIT|SUNSCREEN|TBS|TEKNO3D|Tigole|TIKO|VISIONPLUSHDR|WAF|WiKi|x0r|YIFY|YTS|Zeus`},
			{label: "Multi", fragment: `multi`},
			{label: "Dual Audio", fragment: `dual[ .\-_]?(?:audio|lang(?:uage)?|flac|ac3|aac2?)`},
			{label: "Dubbed", fragment: `dub(?:bed)?`},
			{label: "English", fragment: `english|eng`},
			{label: "Japanese", fragment: `japanese|jap`},
			{label: "Chinese", fragment: `chinese|chi`},
			{label: "Russian", fragment: `russian|rus`},
			{label: "Spanish", fragment: `spanish|spa|esp`},
			{label: "French", fragment: `french|fra`},
			{label: "German", fragment: `german|ger`},
			{label: "Italian", fragment: `italian|ita`},
			{label: "Korean", fragment: `korean|kor`},
			{label: "Hindi", fragment: `hindi|hin`},
			{label: "Thai", fragment: `thai|tha`},
			{label: "Vietnamese", fragment: `vietnamese|vie`},
			{label: "Indonesian", fragment: `indonesian|ind`},
			{label: "Polish", fragment: `polish|pol`},
			{label: "Dutch", fragment: `dutch|dut|nl|nederlands|flemish|vlaams|gesproken`},
			{label: "Danish", fragment: `danish|dan`},
			{label: "Finnish", fragment: `finnish|fin`},
			{label: "Swedish", fragment: `swedish|swe`},
			{label: "Norwegian", fragment: `norwegian|nor`},
			{label: "Latino", fragment: `latino|lat`},
		},
	},
}

// New compiles the built-in tables. Each call returns an independent value.
func New(opts ...pattern.Option) (*Tables, error) {
	categories := make([]*Category, 0, len(builtin))
	for _, tbl := range builtin {
		entries := make([]Entry, 0, len(tbl.defs))
		for _, def := range tbl.defs {
			p, err := pattern.Compile(def.fragment, tbl.kind, opts...)
			if err != nil {
				return nil, fmt.Errorf("built-in %s %q: %w", tbl.name, def.label, err)
			}
			entries = append(entries, Entry{Label: def.label, Pattern: p, Suppresses: def.suppresses})
		}
		c, err := NewCategory(tbl.name, tbl.cardinality, entries)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return NewTables(categories...)
}

// KindOf returns the pattern kind used by the built-in category name.
func KindOf(name Name) (pattern.Kind, bool) {
	for _, tbl := range builtin {
		if tbl.name == name {
			return tbl.kind, true
		}
	}
	return pattern.KindGeneric, false
}
