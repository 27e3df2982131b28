package hardware

import "maps"

// identifiers maps raw hw.machine identifiers to models.
// New devices are supported by appending rows here.
var identifiers = map[string]Model{
	"iPod3,1": IPodTouch3G,
	"iPod4,1": IPodTouch4G,
	"iPod5,1": IPodTouch5G,

	"iPhone2,1": IPhone3Gs,
	"iPhone3,1": IPhone4,
	"iPhone3,2": IPhone4,
	"iPhone3,3": IPhone4,
	"iPhone4,1": IPhone4s,
	"iPhone5,1": IPhone5,
	"iPhone5,2": IPhone5,
	"iPhone5,3": IPhone5c,
	"iPhone5,4": IPhone5c,
	"iPhone6,1": IPhone5s,
	"iPhone6,2": IPhone5s,

	"iPad1,1": IPad1,
	"iPad2,1": IPad2,
	"iPad2,2": IPad2,
	"iPad2,3": IPad2,
	"iPad2,4": IPad2,
	"iPad3,1": IPad3,
	"iPad3,2": IPad3,
	"iPad3,3": IPad3,
	"iPad3,4": IPad4,
	"iPad3,5": IPad4,
	"iPad3,6": IPad4,
	"iPad4,1": IPadAir1,
	"iPad4,2": IPadAir1,
	"iPad4,3": IPadAir1,
	"iPad5,3": IPadAir2,
	"iPad5,4": IPadAir2,

	"iPad2,5": IPadMini1,
	"iPad2,6": IPadMini1,
	"iPad2,7": IPadMini1,
	"iPad4,4": IPadMini2,
	"iPad4,5": IPadMini2,
	"iPad4,6": IPadMini2,
	"iPad4,7": IPadMini3,
	"iPad4,8": IPadMini3,
	"iPad4,9": IPadMini3,
}

// Identifiers returns a copy of the default identifier table.
func Identifiers() map[string]Model {
	return maps.Clone(identifiers)
}
