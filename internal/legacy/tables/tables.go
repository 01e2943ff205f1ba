package tables

// ObjectTypes names the object type tags by number.
var ObjectTypes = Table{
	"NOTHING",
	"LIGHT",
	"SCROLL",
	"WAND",
	"STAFF",
	"WEAPON",
	"FIREWEAPON",
	"MISSILE",
	"TREASURE",
	"ARMOR",
	"POTION",
	"WORN",
	"OTHER",
	"TRASH",
	"TRAP",
	"CONTAINER",
	"NOTE",
	"DRINKCON",
	"KEY",
	"FOOD",
	"MONEY",
	"PEN",
	"BOAT",
	"FOUNTAIN",
	"PORTAL",
	"ROPE",
	"SPELLBOOK",
	"WALL",
	"TOUCHSTONE",
	"BOARD",
	"INSTRUMENT",
}

// WearFlags is the wear flag domain for objects.
var WearFlags = Table{
	"TAKE",
	"FINGER",
	"NECK",
	"BODY",
	"HEAD",
	"LEGS",
	"FEET",
	"HANDS",
	"ARMS",
	"SHIELD",
	"ABOUT",
	"WAIST",
	"WRIST",
	"WIELD",
	"HOLD",
	"2HWIELD",
	"EYES",
	"FACE",
	"EAR",
	"BADGE",
	"BELT",
	"HOVER",
}

// ObjectFlags is the extra flag domain for objects. Positions 32 and up arrive on X lines.
var ObjectFlags = Table{
	"GLOW",
	"HUM",
	"NORENT",
	"ANTI_BERSERKER",
	"NOINVIS",
	"INVISIBLE",
	"MAGIC",
	"NODROP",
	"PERMANENT",
	"ANTI_GOOD",
	"ANTI_EVIL",
	"ANTI_NEUTRAL",
	"ANTI_SORCERER",
	"ANTI_CLERIC",
	"ANTI_ROGUE",
	"ANTI_WARRIOR",
	"NOSELL",
	"ANTI_PALADIN",
	"ANTI_ANTI_PALADIN",
	"ANTI_RANGER",
	"ANTI_DRUID",
	"ANTI_SHAMAN",
	"ANTI_ASSASSIN",
	"ANTI_MERCENARY",
	"ANTI_NECROMANCER",
	"ANTI_CONJURER",
	"NOBURN",
	"NOLOCATE",
	"DECOMP",
	"FLOAT",
	"NOFALL",
	"WAS_DISARMED",
	"ANTI_MONK",
	"ANTI_BARD",
	"ELVEN",
	"DWARVEN",
	"ANTI_THIEF",
	"ANTI_PYROMANCER",
	"ANTI_CRYOMANCER",
	"ANTI_ILLUSIONIST",
	"ANTI_PRIEST",
	"ANTI_DIABOLIST",
	"ANTI_TINY",
	"ANTI_SMALL",
	"ANTI_MEDIUM",
	"ANTI_LARGE",
	"ANTI_HUGE",
	"ANTI_GIANT",
	"ANTI_GARGANTUAN",
	"ANTI_COLOSSAL",
	"ANTI_TITANIC",
	"ANTI_MOUNTAINOUS",
	"ANTI_ARBOREAN",
}

// Affects names the apply locations used by object A lines.
var Affects = Table{
	"NONE",
	"STR",
	"DEX",
	"INT",
	"WIS",
	"CON",
	"CHA",
	"CLASS",
	"LEVEL",
	"AGE",
	"CHAR_WEIGHT",
	"CHAR_HEIGHT",
	"MANA",
	"HIT",
	"MOVE",
	"GOLD",
	"EXP",
	"AC",
	"HITROLL",
	"DAMROLL",
	"SAVING_PARA",
	"SAVING_ROD",
	"SAVING_PETRI",
	"SAVING_BREATH",
	"SAVING_SPELL",
	"SIZE",
	"HIT_REGEN",
	"FOCUS",
	"PERCEPTION",
	"HIDDENNESS",
	"COMPOSITION",
}

// Effects is the effect flag domain shared by mobiles, objects and players.
var Effects = Table{
	"BLIND",
	"INVISIBLE",
	"DETECT_ALIGN",
	"DETECT_INVIS",
	"DETECT_MAGIC",
	"SENSE_LIFE",
	"WATERWALK",
	"SANCTUARY",
	"CONFUSION",
	"CURSE",
	"INFRAVISION",
	"POISON",
	"PROTECT_EVIL",
	"PROTECT_GOOD",
	"SLEEP",
	"NOTRACK",
	"TAMED",
	"BERSERK",
	"SNEAK",
	"STEALTH",
	"FLY",
	"CHARM",
	"STONE_SKIN",
	"FARSEE",
	"HASTE",
	"BLUR",
	"VITALITY",
	"GLORY",
	"MAJOR_PARALYSIS",
	"FAMILIARITY",
	"MESMERIZED",
	"IMMOBILIZED",
	"LIGHT",
	"UNUSED_33",
	"MINOR_PARALYSIS",
	"HURT_THROAT",
	"FEATHER_FALL",
	"WATERBREATH",
	"SOULSHIELD",
	"SILENCE",
	"PROT_FIRE",
	"PROT_COLD",
	"PROT_AIR",
	"PROT_EARTH",
	"FIRESHIELD",
	"COLDSHIELD",
	"MINOR_GLOBE",
	"MAJOR_GLOBE",
	"HARNESS",
	"ON_FIRE",
	"FEAR",
	"TONGUES",
	"DISEASE",
	"INSANITY",
	"ULTRAVISION",
	"NEGATE_HEAT",
	"NEGATE_COLD",
	"NEGATE_AIR",
	"NEGATE_EARTH",
	"REMOTE_AGGR",
	"UNUSED_60",
	"UNUSED_61",
	"UNUSED_62",
	"UNUSED_63",
	"AWARE",
	"REDUCE",
	"ENLARGE",
	"VAMP_TOUCH",
	"RAY_OF_ENFEEB",
	"ANIMATED",
	"EXPOSED",
	"SHADOWING",
	"CAMOUFLAGED",
	"SPIRIT_WOLF",
	"SPIRIT_BEAR",
	"WRATH",
	"MISDIRECTION",
	"MISDIRECTING",
	"BLESS",
	"HEX",
	"DETECT_POISON",
	"SONG_OF_REST",
	"DISPLACEMENT",
	"GREATER_DISPLACEMENT",
	"FIRE_WEAPON",
	"ICE_WEAPON",
	"POISON_WEAPON",
	"ACID_WEAPON",
	"SHOCK_WEAPON",
	"RADIANT_WEAPON",
}

// DamageTypes names weapon damage types by number.
var DamageTypes = Table{
	"HIT",
	"STING",
	"WHIP",
	"SLASH",
	"BITE",
	"BLUDGEON",
	"CRUSH",
	"POUND",
	"CLAW",
	"MAUL",
	"THRASH",
	"PIERCE",
	"BLAST",
	"PUNCH",
	"STAB",
	"FIRE",
	"COLD",
	"ACID",
	"SHOCK",
	"POISON",
	"ALIGN",
}

// Liquids names drink container contents by number.
var Liquids = Table{
	"WATER",
	"BEER",
	"WINE",
	"ALE",
	"DARKALE",
	"WHISKY",
	"LEMONADE",
	"FIREBRT",
	"LOCALSPC",
	"SLIME",
	"MILK",
	"TEA",
	"COFFEE",
	"BLOOD",
	"SALTWATER",
	"RUM",
	"NECTAR",
	"SAKE",
	"CIDER",
	"TOMATOSOUP",
	"POTATOSOUP",
	"CHAI",
	"APPLEJUICE",
	"ORNGJUICE",
	"PNAPLJUICE",
	"GRAPEJUICE",
	"POMJUICE",
	"MELONAE",
	"COCOA",
	"ESPRESSO",
	"CAPPUCCINO",
	"MANGOLASSI",
	"ROSEWATER",
	"GREENTEA",
	"CHAMOMILE",
	"GIN",
	"BRANDY",
	"MEAD",
	"CHAMPAGNE",
	"VODKA",
	"TEQUILA",
	"ABSINTHE",
}

// MobFlags is the mobile flag domain. Positions 32 and up arrive on MOB2 lines.
var MobFlags = Table{
	"SPEC",
	"SENTINEL",
	"SCAVENGER",
	"ISNPC",
	"AWARE",
	"AGGRESSIVE",
	"STAY_ZONE",
	"WIMPY",
	"AGGR_EVIL",
	"AGGR_GOOD",
	"AGGR_NEUTRAL",
	"MEMORY",
	"HELPER",
	"NOCHARM",
	"NOSUMMON",
	"NOSLEEP",
	"NOBASH",
	"NOBLIND",
	"MOUNTABLE",
	"NO_EQ_RESTRICT",
	"FAST_TRACK",
	"SLOW_TRACK",
	"CASTING",
	"SUMMONED_MOUNT",
	"AQUATIC",
	"AGGR_EVIL_RACE",
	"AGGR_GOOD_RACE",
	"NOSILENCE",
	"NOVICIOUS",
	"TEACHER",
	"ANIMATED",
	"PEACEFUL",
	"NOPOISON",
	"ILLUSORY",
	"PLAYER_PHANTASM",
	"NO_CLASS_AI",
	"NOSCRIPT",
	"PEACEKEEPER",
	"PROTECTOR",
	"PET",
}

// RoomFlags is the room flag domain.
var RoomFlags = Table{
	"DARK",
	"DEATH",
	"NOMOB",
	"INDOORS",
	"PEACEFUL",
	"SOUNDPROOF",
	"NOTRACK",
	"NOMAGIC",
	"TUNNEL",
	"PRIVATE",
	"GODROOM",
	"HOUSE",
	"HOUSE_CRASH",
	"ATRIUM",
	"OLC",
	"BFS_MARK",
	"NOWELL",
	"NORECALL",
	"UNDERDARK",
	"NOSUMMON",
	"NOSHIFT",
	"GUILDHALL",
	"NOSCAN",
	"ALT_EXIT",
	"MAP",
	"ALWAYSLIT",
	"ARENA",
	"OBSERVATORY",
}

// ExitFlags is the exit flag domain.
var ExitFlags = Table{
	"EX_ISDOOR",
	"EX_CLOSED",
	"EX_LOCKED",
	"EX_PICKPROOF",
	"EX_HIDDEN",
	"EX_DESCRIPT",
}

// ShopFlags is the shop behavior flag domain.
var ShopFlags = Table{
	"WILL_START_FIGHT",
	"WILL_BANK_MONEY",
}

// ShopTradesWith is the shop customer restriction domain.
var ShopTradesWith = Table{
	"TRADE_NOGOOD",
	"TRADE_NOEVIL",
	"TRADE_NONEUTRAL",
	"TRADE_NOMAGIC_USER",
	"TRADE_NOCLERIC",
	"TRADE_NOTHIEF",
	"TRADE_NOWARRIOR",
}

// TriggerTypes is the trigger type flag domain.
var TriggerTypes = Table{
	"Global",
	"Random",
	"Command",
	"Speech",
	"Act",
	"Death",
	"Greet",
	"GreetAll",
	"Entry",
	"Receive",
	"Fight",
	"HitPercentage",
	"Bribe",
	"SpeechTo",
	"Load",
	"Cast",
	"Leave",
	"Door",
	"Look",
	"Time",
}

// PlayerFlags is the player flag domain.
var PlayerFlags = Table{
	"PLR_KILLER",
	"PLR_THIEF",
	"PLR_FROZEN",
	"PLR_DONTSET",
	"PLR_WRITING",
	"PLR_MAILING",
	"PLR_AUTOSAVE",
	"PLR_SITEOK",
	"PLR_NOSHOUT",
	"PLR_NOTITLE",
	"PLR_DELETED",
	"PLR_LOADROOM",
	"PLR_NOWIZLIST",
	"PLR_NODELETE",
	"PLR_INVSTART",
	"PLR_CRYO",
	"PLR_MEDITATE",
	"PLR_CASTING",
	"PLR_BOUND",
	"PLR_SCRIBE",
	"PLR_TEACHING",
	"PLR_NAPPROVE",
	"PLR_NEWNAME",
	"PLR_REMOVING",
	"PLR_SAVING",
	"PLR_GOTSTARS",
	"NUM_PLR_FLAGS",
}

// PreferenceFlags is the player preference flag domain.
var PreferenceFlags = Table{
	"PRF_BRIEF",
	"PRF_COMPACT",
	"PRF_DEAF",
	"PRF_NOTELL",
	"PRF_OLCCOMM",
	"PRF_LINENUMS",
	"PRF_AUTOLOOT",
	"PRF_AUTOEXIT",
	"PRF_NOHASSLE",
	"PRF_QUEST",
	"PRF_SUMMONABLE",
	"PRF_NOREPEAT",
	"PRF_HOLYLIGHT",
	"PRF_COLOR_1",
	"PRF_COLOR_2",
	"PRF_NOWIZ",
	"PRF_LOG1",
	"PRF_LOG2",
	"PRF_AFK",
	"PRF_NOGOSS",
	"PRF_NOHINTS",
	"PRF_ROOMFLAGS",
	"PRF_NOPETI",
	"PRF_AUTOSPLIT",
	"PRF_NOCLANCOMM",
	"PRF_ANON",
	"PRF_SHOWVNUMS",
	"PRF_NICEAREA",
	"PRF_VICIOUS",
	"PRF_PASSIVE",
	"PRF_ROOMVIS",
	"PRF_NOFOLLOW",
	"PRF_AUTOTREAS",
	"PRF_EXPAND_OBJS",
	"PRF_EXPAND_MOBS",
	"PRF_SACRIFICIAL",
	"PRF_PETASSIST",
	"NUM_PRF_FLAGS",
}

// PrivilegeFlags is the player privilege flag domain.
var PrivilegeFlags = Table{
	"PRV_CLAN_ADMIN",
	"PRV_TITLE",
	"PRV_ANON_TOGGLE",
	"PRV_AUTO_GAIN",
}

// Spells names spells by number. Index 0 is NONE.
var Spells = Table{
	"NONE",
	"ARMOR",
	"TELEPORT",
	"BLESS",
	"BLINDNESS",
	"BURNING_HANDS",
	"CALL_LIGHTNING",
	"CHARM",
	"CHILL_TOUCH",
	"CLONE",
	"COLOR_SPRAY",
	"CONTROL_WEATHER",
	"CREATE_FOOD",
	"CREATE_WATER",
	"CURE_BLIND",
	"CURE_CRITIC",
	"CURE_LIGHT",
	"CURSE",
	"DETECT_ALIGN",
	"DETECT_INVIS",
	"DETECT_MAGIC",
	"DETECT_POISON",
	"DISPEL_EVIL",
	"EARTHQUAKE",
	"ENCHANT_WEAPON",
	"ENERGY_DRAIN",
	"FIREBALL",
	"HARM",
	"HEAL",
	"INVISIBLE",
	"LIGHTNING_BOLT",
	"LOCATE_OBJECT",
	"MAGIC_MISSILE",
	"POISON",
	"PROT_FROM_EVIL",
	"REMOVE_CURSE",
	"SANCTUARY",
	"SHOCKING_GRASP",
	"SLEEP",
	"STRENGTH",
	"SUMMON",
	"VENTRILOQUATE",
	"WORD_OF_RECALL",
	"REMOVE_POISON",
	"SENSE_LIFE",
	"ANIMATE_DEAD",
	"DISPEL_GOOD",
	"GROUP_ARMOR",
	"GROUP_HEAL",
	"GROUP_RECALL",
	"INFRAVISION",
	"WATERWALK",
	"STONE_SKIN",
	"FULL_HEAL",
	"FULL_HARM",
	"WALL_OF_FOG",
	"WALL_OF_STONE",
	"FLY",
	"SUMMON_DRACOLICH",
	"SUMMON_ELEMENTAL",
	"SUMMON_DEMON",
	"SUMMON_GREATER_DEMON",
	"DIMENSION_DOOR",
	"CREEPING_DOOM",
	"DOOM",
	"METEORSWARM",
	"BIGBYS_CLENCHED_FIST",
	"FARSEE",
	"HASTE",
	"BLUR",
	"GREATER_ENDURANCE",
	"MOONWELL",
	"INN_STRENGTH",
	"DARKNESS",
	"ILLUMINATION",
	"COMPREHEND_LANG",
	"CONE_OF_COLD",
	"ICE_STORM",
	"ICE_SHARDS",
	"MAJOR_PARALYSIS",
	"VAMPIRIC_BREATH",
	"RESURRECT",
	"INCENDIARY_NEBULA",
	"MINOR_PARALYSIS",
	"CAUSE_LIGHT",
	"CAUSE_SERIOUS",
	"CAUSE_CRITIC",
	"PRESERVE",
	"CURE_SERIOUS",
	"VIGORIZE_LIGHT",
	"VIGORIZE_SERIOUS",
	"VIGORIZE_CRITIC",
	"SOULSHIELD",
	"DESTROY_UNDEAD",
	"SILENCE",
	"FLAMESTRIKE",
	"UNHOLY_WORD",
	"HOLY_WORD",
	"PLANE_SHIFT",
	"DISPEL_MAGIC",
	"MINOR_CREATION",
	"CONCEALMENT",
	"RAY_OF_ENFEEB",
	"FEATHER_FALL",
	"WIZARD_EYE",
	"FIRESHIELD",
	"COLDSHIELD",
	"MINOR_GLOBE",
	"MAJOR_GLOBE",
	"DISINTEGRATE",
	"HARNESS",
	"CHAIN_LIGHTNING",
	"MASS_INVIS",
	"RELOCATE",
	"FEAR",
	"CIRCLE_OF_LIGHT",
	"DIVINE_BOLT",
	"PRAYER",
	"ELEMENTAL_WARDING",
	"DIVINE_RAY",
	"LESSER_EXORCISM",
	"DECAY",
	"SPEAK_IN_TONGUES",
	"ENLIGHTENMENT",
	"EXORCISM",
	"SPINECHILLER",
	"WINGS_OF_HEAVEN",
	"BANISH",
	"WORD_OF_COMMAND",
	"DIVINE_ESSENCE",
	"HEAVENS_GATE",
	"DARK_PRESENCE",
	"DEMONSKIN",
	"DARK_FEAST",
	"HELL_BOLT",
	"DISEASE",
	"INSANITY",
	"DEMONIC_ASPECT",
	"HELLFIRE_BRIMSTONE",
	"STYGIAN_ERUPTION",
	"DEMONIC_MUTATION",
	"WINGS_OF_HELL",
	"SANE_MIND",
	"HELLS_GATE",
	"BARKSKIN",
	"NIGHT_VISION",
	"WRITHING_WEEDS",
	"CREATE_SPRING",
	"NOURISHMENT",
	"GAIAS_CLOAK",
	"NATURES_EMBRACE",
	"ENTANGLE",
	"INVIGORATE",
	"WANDERING_WOODS",
	"URBAN_RENEWAL",
	"SUNRAY",
	"ARMOR_OF_GAIA",
	"FIRE_DARTS",
	"MAGIC_TORCH",
	"SMOKE",
	"MIRAGE",
	"FLAME_BLADE",
	"POSITIVE_FIELD",
	"FIRESTORM",
	"MELT",
	"CIRCLE_OF_FIRE",
	"IMMOLATE",
	"SUPERNOVA",
	"CREMATE",
	"NEGATE_HEAT",
	"ACID_BURST",
	"ICE_DARTS",
	"ICE_ARMOR",
	"ICE_DAGGER",
	"FREEZING_WIND",
	"FREEZE",
	"WALL_OF_ICE",
	"ICEBALL",
	"FLOOD",
	"VAPORFORM",
	"NEGATE_COLD",
	"WATERFORM",
	"EXTINGUISH",
	"RAIN",
	"REDUCE",
	"ENLARGE",
	"IDENTIFY",
	"BONE_ARMOR",
	"SUMMON_CORPSE",
	"SHIFT_CORPSE",
	"GLORY",
	"ILLUSORY_WALL",
	"NIGHTMARE",
	"DISCORPORATE",
	"ISOLATION",
	"FAMILIARITY",
	"HYSTERIA",
	"MESMERIZE",
	"SEVERANCE",
	"SOUL_REAVER",
	"DETONATION",
	"FIRE_BREATH",
	"GAS_BREATH",
	"FROST_BREATH",
	"ACID_BREATH",
	"LIGHTNING_BREATH",
	"LESSER_ENDURANCE",
	"ENDURANCE",
	"VITALITY",
	"GREATER_VITALITY",
	"DRAGONS_HEALTH",
	"REBUKE_UNDEAD",
	"DEGENERATION",
	"SOUL_TAP",
	"NATURES_GUIDANCE",
	"MOONBEAM",
	"PHANTASM",
	"SIMULACRUM",
	"MISDIRECTION",
	"CONFUSION",
	"PHOSPHORIC_EMBERS",
	"RECALL",
	"PYRE",
	"IRON_MAIDEN",
	"FRACTURE",
	"FRACTURE_SHRAPNEL",
	"BONE_CAGE",
	"PYRE_RECOIL",
	"WORLD_TELEPORT",
	"INN_SYLL",
	"INN_TREN",
	"INN_TASS",
	"INN_BRILL",
	"INN_ASCEN",
	"SPIRIT_ARROWS",
	"PROT_FROM_GOOD",
	"ANCESTRAL_VENGEANCE",
	"CIRCLE_OF_DEATH",
	"BALEFUL_POLYMORPH",
	"SPIRIT_RAY",
	"VICIOUS_MOCKERY",
	"REMOVE_PARALYSIS",
	"CLOUD_OF_DAGGERS",
	"REVEAL_HIDDEN",
	"BLINDING_BEAUTY",
	"ACID_FOG",
	"WEB",
	"EARTH_BLESSING",
	"PROTECT_FIRE",
	"PROTECT_COLD",
	"PROTECT_ACID",
	"PROTECT_SHOCK",
	"ENHANCE_STR",
	"ENHANCE_DEX",
	"ENHANCE_CON",
	"ENHANCE_INT",
	"ENHANCE_WIS",
	"ENHANCE_CHA",
	"MONK_FIRE",
	"MONK_COLD",
	"MONK_ACID",
	"MONK_SHOCK",
	"STATUE",
	"WATER_BLAST",
	"DISPLACEMENT",
	"GREATER DISPLACEMENT",
	"NIMBLE",
	"CLARITY",
}

// Directions names exit directions.
var Directions = Table{
	"north",
	"east",
	"south",
	"west",
	"up",
	"down",
}

// Genders names character genders.
var Genders = Table{
	"neutral",
	"male",
	"female",
	"non_binary",
}

// Classes names character classes.
var Classes = Table{
	"sorcerer",
	"cleric",
	"thief",
	"warrior",
	"paladin",
	"anti_paladin",
	"ranger",
	"druid",
	"shaman",
	"assassin",
	"mercenary",
	"necromancer",
	"conjurer",
	"monk",
	"berserker",
	"priest",
	"diabolist",
	"mystic",
	"rogue",
	"bard",
	"pyromancer",
	"cryomancer",
	"illusionist",
	"hunter",
	"layman",
}

// Positions names body positions.
var Positions = Table{
	"prone",
	"sitting",
	"kneeling",
	"standing",
	"flying",
}

// Stances names mobile stances.
var Stances = Table{
	"dead",
	"mort",
	"incapacitated",
	"stunned",
	"sleeping",
	"resting",
	"alert",
	"fighting",
}

// Races names character races.
var Races = Table{
	"human",
	"elf",
	"gnome",
	"dwarf",
	"troll",
	"drow",
	"duergar",
	"ogre",
	"orc",
	"half_elf",
	"barbarian",
	"halfling",
	"plant",
	"humanoid",
	"animal",
	"dragon_general",
	"giant",
	"other",
	"goblin",
	"demon",
	"brownie",
	"dragon_fire",
	"dragon_frost",
	"dragon_acid",
	"dragon_lightning",
	"dragon_gas",
	"dragonborn_fire",
	"dragonborn_frost",
	"dragonborn_acid",
	"dragonborn_lightning",
	"dragonborn_gas",
	"sverfneblin",
	"faerie_seelie",
	"faerie_unseelie",
	"nymph",
	"arborean",
}

// LifeForces names life force kinds.
var LifeForces = Table{
	"life",
	"undead",
	"magic",
	"celestial",
	"demonic",
	"elemental",
}

// Compositions names body compositions.
var Compositions = Table{
	"flesh",
	"earth",
	"air",
	"fire",
	"water",
	"ice",
	"mist",
	"ether",
	"metal",
	"stone",
	"bone",
	"lava",
	"plant",
}

// QuitReasons names the reasons a player last left the game.
var QuitReasons = Table{
	"undef",
	"rent",
	"cryo",
	"timeout",
	"hotboot",
	"quit_mort",
	"quit_immortal",
	"camp",
	"w_rent",
	"purge",
	"autosave",
}

// Cooldowns names player cooldown slots.
var Cooldowns = Table{
	"backstab",
	"bash",
	"instant_kill",
	"disarm",
	"fumbling_primary",
	"dropped_primary",
	"fumbling_secondary",
	"dropped_secondary",
	"summon_mount",
	"lay_hands",
	"first_aid",
	"eye_gouge",
	"throat_cut",
	"shape_change",
	"defense_chant",
	"innate_invisible",
	"innate_chaz",
	"innate_darkness",
	"innate_feather_fall",
	"innate_syll",
	"innate_tren",
	"innate_tass",
	"innate_brill",
	"innate_ascen",
	"innate_harness",
	"breathe",
	"innate_create",
	"innate_illumination",
	"innate_faerie_step",
	"music1",
	"music2",
	"music3",
	"music4",
	"music5",
	"music6",
	"music7",
	"innate_blinding_beauty",
	"innate_statue",
	"innate_bark_skin",
	"offense_chant",
}

// WearLocations names equipment slots by position.
var WearLocations = Table{
	"light",
	"finger_right",
	"finger_left",
	"neck1",
	"neck2",
	"body",
	"head",
	"legs",
	"feet",
	"hands",
	"arms",
	"shield",
	"about",
	"waist",
	"wrist_right",
	"wrist_left",
	"wield",
	"wield2",
	"hold",
	"hold2",
	"two_hand_wield",
	"eyes",
	"face",
	"lear",
	"rear",
	"badge",
	"on_belt",
	"hover",
}

// Sizes names character sizes.
var Sizes = Table{
	"tiny",
	"small",
	"medium",
	"large",
	"huge",
	"giant",
	"gargantuan",
	"colossal",
	"titanic",
	"mountainous",
}

// ResetModes names zone reset modes.
var ResetModes = Table{
	"never",
	"empty",
	"normal",
}

// Climates names zone climates.
var Climates = Table{
	"none",
	"semiarid",
	"arid",
	"oceanic",
	"temperate",
	"subtropical",
	"tropical",
	"subarctic",
	"arctic",
	"alpine",
}

// ApplyTypes names player apply locations. Index 0 is none.
var ApplyTypes = Table{
	"none",
	"str",
	"dex",
	"int",
	"wis",
	"con",
	"cha",
	"class",
	"level",
	"age",
	"character_weight",
	"character_height",
	"mana",
	"hit",
	"move",
	"gold",
	"exp",
	"ac",
	"hit_roll",
	"dam_roll",
	"saving_paralysis",
	"saving_rod",
	"saving_petrification",
	"saving_breath",
	"saving_spell",
	"size",
	"regeneration",
	"focus",
	"perception",
	"concealment",
	"composition",
}

// Hemispheres names zone hemispheres.
var Hemispheres = Table{
	"northwest",
	"northeast",
	"southwest",
	"southeast",
}

// Sectors names room sector types.
var Sectors = Table{
	"indoors",
	"city",
	"field",
	"forest",
	"hills",
	"mountains",
	"water_shallow",
	"water_deep",
	"underwater",
	"flying",
	"desert",
	"arctic",
	"swamp",
	"jungle",
	"underground",
	"road",
	"entrance",
	"ruins",
	"astral",
	"ethereal",
	"elemental_air",
	"elemental_earth",
	"elemental_fire",
	"elemental_water",
}

// KillTypes names trophy kill kinds. Index 0 is unused.
var KillTypes = Table{
	"none",
	"mob",
	"player",
}

// Skills names skills, spells and chants by number. The numbering is sparse.
var Skills = map[int]string{
	1: "SPELL_ARMOR",
	2: "SPELL_TELEPORT",
	3: "SPELL_BLESS",
	4: "SPELL_BLINDNESS",
	5: "SPELL_BURNING_HANDS",
	6: "SPELL_CALL_LIGHTNING",
	7: "SPELL_CHARM",
	8: "SPELL_CHILL_TOUCH",
	9: "SPELL_CLONE",
	10: "SPELL_COLOR_SPRAY",
	11: "SPELL_CONTROL_WEATHER",
	12: "SPELL_CREATE_FOOD",
	13: "SPELL_CREATE_WATER",
	14: "SPELL_CURE_BLIND",
	15: "SPELL_CURE_CRITIC",
	16: "SPELL_CURE_LIGHT",
	17: "SPELL_CURSE",
	18: "SPELL_DETECT_ALIGN",
	19: "SPELL_DETECT_INVIS",
	20: "SPELL_DETECT_MAGIC",
	21: "SPELL_DETECT_POISON",
	22: "SPELL_DISPEL_EVIL",
	23: "SPELL_EARTHQUAKE",
	24: "SPELL_ENCHANT_WEAPON",
	25: "SPELL_ENERGY_DRAIN",
	26: "SPELL_FIREBALL",
	27: "SPELL_HARM",
	28: "SPELL_HEAL",
	29: "SPELL_INVISIBLE",
	30: "SPELL_LIGHTNING_BOLT",
	31: "SPELL_LOCATE_OBJECT",
	32: "SPELL_MAGIC_MISSILE",
	33: "SPELL_POISON",
	34: "SPELL_PROT_FROM_EVIL",
	35: "SPELL_REMOVE_CURSE",
	36: "SPELL_SANCTUARY",
	37: "SPELL_SHOCKING_GRASP",
	38: "SPELL_SLEEP",
	39: "SPELL_ENHANCE_ABILITY",
	40: "SPELL_SUMMON",
	41: "SPELL_VENTRILOQUATE",
	42: "SPELL_WORD_OF_RECALL",
	43: "SPELL_REMOVE_POISON",
	44: "SPELL_SENSE_LIFE",
	45: "SPELL_ANIMATE_DEAD",
	46: "SPELL_DISPEL_GOOD",
	47: "SPELL_GROUP_ARMOR",
	48: "SPELL_GROUP_HEAL",
	49: "SPELL_GROUP_RECALL",
	50: "SPELL_INFRAVISION",
	51: "SPELL_WATERWALK",
	52: "SPELL_STONE_SKIN",
	53: "SPELL_FULL_HEAL",
	54: "SPELL_FULL_HARM",
	55: "SPELL_WALL_OF_FOG",
	56: "SPELL_WALL_OF_STONE",
	57: "SPELL_FLY",
	58: "SPELL_SUMMON_DRACOLICH",
	59: "SPELL_SUMMON_ELEMENTAL",
	60: "SPELL_SUMMON_DEMON",
	61: "SPELL_SUMMON_GREATER_DEMON",
	62: "SPELL_DIMENSION_DOOR",
	63: "SPELL_CREEPING_DOOM",
	64: "SPELL_DOOM",
	65: "SPELL_METEORSWARM",
	66: "SPELL_BIGBYS_CLENCHED_FIST",
	67: "SPELL_FARSEE",
	68: "SPELL_HASTE",
	69: "SPELL_BLUR",
	70: "SPELL_GREATER_ENDURANCE",
	71: "SPELL_MOONWELL",
	72: "SPELL_INN_CHAZ",
	73: "SPELL_DARKNESS",
	74: "SPELL_ILLUMINATION",
	75: "SPELL_COMPREHEND_LANG",
	76: "SPELL_CONE_OF_COLD",
	77: "SPELL_ICE_STORM",
	78: "SPELL_ICE_SHARDS",
	79: "SPELL_MAJOR_PARALYSIS",
	80: "SPELL_VAMPIRIC_BREATH",
	81: "SPELL_RESURRECT",
	82: "SPELL_INCENDIARY_NEBULA",
	83: "SPELL_MINOR_PARALYSIS",
	84: "SPELL_CAUSE_LIGHT",
	85: "SPELL_CAUSE_SERIOUS",
	86: "SPELL_CAUSE_CRITIC",
	87: "SPELL_PRESERVE",
	88: "SPELL_CURE_SERIOUS",
	89: "SPELL_VIGORIZE_LIGHT",
	90: "SPELL_VIGORIZE_SERIOUS",
	91: "SPELL_VIGORIZE_CRITIC",
	92: "SPELL_SOULSHIELD",
	93: "SPELL_DESTROY_UNDEAD",
	94: "SPELL_SILENCE",
	95: "SPELL_FLAMESTRIKE",
	96: "SPELL_UNHOLY_WORD",
	97: "SPELL_HOLY_WORD",
	98: "SPELL_PLANE_SHIFT",
	99: "SPELL_DISPEL_MAGIC",
	100: "SPELL_MINOR_CREATION",
	101: "SPELL_CONCEALMENT",
	102: "SPELL_RAY_OF_ENFEEB",
	103: "SPELL_FEATHER_FALL",
	104: "SPELL_WIZARD_EYE",
	105: "SPELL_FIRESHIELD",
	106: "SPELL_COLDSHIELD",
	107: "SPELL_MINOR_GLOBE",
	108: "SPELL_MAJOR_GLOBE",
	109: "SPELL_DISINTEGRATE",
	110: "SPELL_HARNESS",
	111: "SPELL_CHAIN_LIGHTNING",
	112: "SPELL_MASS_INVIS",
	113: "SPELL_RELOCATE",
	114: "SPELL_FEAR",
	115: "SPELL_CIRCLE_OF_LIGHT",
	116: "SPELL_DIVINE_BOLT",
	117: "SPELL_PRAYER",
	118: "SPELL_ELEMENTAL_WARDING",
	119: "SPELL_DIVINE_RAY",
	120: "SPELL_LESSER_EXORCISM",
	121: "SPELL_DECAY",
	122: "SPELL_SPEAK_IN_TONGUES",
	123: "SPELL_ENLIGHTENMENT",
	124: "SPELL_EXORCISM",
	125: "SPELL_SPINECHILLER",
	126: "SPELL_WINGS_OF_HEAVEN",
	127: "SPELL_BANISH",
	128: "SPELL_WORD_OF_COMMAND",
	129: "SPELL_DIVINE_ESSENCE",
	130: "SPELL_HEAVENS_GATE",
	131: "SPELL_DARK_PRESENCE",
	132: "SPELL_DEMONSKIN",
	133: "SPELL_DARK_FEAST",
	134: "SPELL_HELL_BOLT",
	135: "SPELL_DISEASE",
	136: "SPELL_INSANITY",
	137: "SPELL_DEMONIC_ASPECT",
	138: "SPELL_HELLFIRE_BRIMSTONE",
	139: "SPELL_STYGIAN_ERUPTION",
	140: "SPELL_DEMONIC_MUTATION",
	141: "SPELL_WINGS_OF_HELL",
	142: "SPELL_SANE_MIND",
	143: "SPELL_HELLS_GATE",
	144: "SPELL_BARKSKIN",
	145: "SPELL_NIGHT_VISION",
	146: "SPELL_WRITHING_WEEDS",
	147: "SPELL_CREATE_SPRING",
	148: "SPELL_NOURISHMENT",
	149: "SPELL_GAIAS_CLOAK",
	150: "SPELL_NATURES_EMBRACE",
	151: "SPELL_ENTANGLE",
	152: "SPELL_INVIGORATE",
	153: "SPELL_WANDERING_WOODS",
	154: "SPELL_URBAN_RENEWAL",
	155: "SPELL_SUNRAY",
	156: "SPELL_ARMOR_OF_GAIA",
	157: "SPELL_FIRE_DARTS",
	158: "SPELL_MAGIC_TORCH",
	159: "SPELL_SMOKE",
	160: "SPELL_MIRAGE",
	161: "SPELL_FLAME_BLADE",
	162: "SPELL_POSITIVE_FIELD",
	163: "SPELL_FIRESTORM",
	164: "SPELL_MELT",
	165: "SPELL_CIRCLE_OF_FIRE",
	166: "SPELL_IMMOLATE",
	167: "SPELL_SUPERNOVA",
	168: "SPELL_CREMATE",
	169: "SPELL_NEGATE_HEAT",
	170: "SPELL_ACID_BURST",
	171: "SPELL_ICE_DARTS",
	172: "SPELL_ICE_ARMOR",
	173: "SPELL_ICE_DAGGER",
	174: "SPELL_FREEZING_WIND",
	175: "SPELL_FREEZE",
	176: "SPELL_WALL_OF_ICE",
	177: "SPELL_ICEBALL",
	178: "SPELL_FLOOD",
	179: "SPELL_VAPORFORM",
	180: "SPELL_NEGATE_COLD",
	181: "SPELL_WATERFORM",
	182: "SPELL_EXTINGUISH",
	183: "SPELL_RAIN",
	184: "SPELL_REDUCE",
	185: "SPELL_ENLARGE",
	186: "SPELL_IDENTIFY",
	187: "SPELL_BONE_ARMOR",
	188: "SPELL_SUMMON_CORPSE",
	189: "SPELL_SHIFT_CORPSE",
	190: "SPELL_GLORY",
	191: "SPELL_ILLUSORY_WALL",
	192: "SPELL_NIGHTMARE",
	193: "SPELL_DISCORPORATE",
	194: "SPELL_ISOLATION",
	195: "SPELL_FAMILIARITY",
	196: "SPELL_HYSTERIA",
	197: "SPELL_MESMERIZE",
	198: "SPELL_SEVERANCE",
	199: "SPELL_SOUL_REAVER",
	200: "SPELL_DETONATION",
	201: "SPELL_FIRE_BREATH",
	202: "SPELL_GAS_BREATH",
	203: "SPELL_FROST_BREATH",
	204: "SPELL_ACID_BREATH",
	205: "SPELL_LIGHTNING_BREATH",
	206: "SPELL_LESSER_ENDURANCE",
	207: "SPELL_ENDURANCE",
	208: "SPELL_VITALITY",
	209: "SPELL_GREATER_VITALITY",
	210: "SPELL_DRAGONS_HEALTH",
	211: "SPELL_REBUKE_UNDEAD",
	212: "SPELL_DEGENERATION",
	213: "SPELL_SOUL_TAP",
	214: "SPELL_NATURES_GUIDANCE",
	215: "SPELL_MOONBEAM",
	216: "SPELL_PHANTASM",
	217: "SPELL_SIMULACRUM",
	218: "SPELL_MISDIRECTION",
	219: "SPELL_CONFUSION",
	220: "SPELL_PHOSPHORIC_EMBERS",
	221: "SPELL_RECALL",
	222: "SPELL_PYRE",
	223: "SPELL_IRON_MAIDEN",
	224: "SPELL_FRACTURE",
	225: "SPELL_FRACTURE_SHRAPNEL",
	226: "SPELL_BONE_CAGE",
	227: "SPELL_PYRE_RECOIL",
	228: "SPELL_WORLD_TELEPORT",
	229: "SPELL_INN_SYLL",
	230: "SPELL_INN_TREN",
	231: "SPELL_INN_TASS",
	232: "SPELL_INN_BRILL",
	233: "SPELL_INN_ASCEN",
	234: "SPELL_SPIRIT_ARROWS",
	235: "SPELL_PROT_FROM_GOOD",
	236: "SPELL_ANCESTRAL_VENGEANCE",
	237: "SPELL_CIRCLE_OF_DEATH",
	238: "SPELL_BALEFUL_POLYMORPH",
	239: "SPELL_SPIRIT_RAY",
	240: "SPELL_VICIOUS_MOCKERY",
	241: "SPELL_REMOVE_PARALYSIS",
	242: "SPELL_CLOUD_OF_DAGGERS",
	243: "SPELL_REVEAL_HIDDEN",
	244: "SPELL_BLINDING_BEAUTY",
	245: "SPELL_ACID_FOG",
	246: "SPELL_WEB",
	247: "SPELL_EARTH_BLESSING",
	248: "SPELL_PROTECT_FIRE",
	249: "SPELL_PROTECT_COLD",
	250: "SPELL_PROTECT_ACID",
	251: "SPELL_PROTECT_SHOCK",
	252: "SPELL_ENHANCE_STR",
	253: "SPELL_ENHANCE_DEX",
	254: "SPELL_ENHANCE_CON",
	255: "SPELL_ENHANCE_INT",
	256: "SPELL_ENHANCE_WIS",
	257: "SPELL_ENHANCE_CHA",
	258: "SPELL_FIRES_OF_SAINT_AUGUSTINE",
	259: "SPELL_BLIZZARDS_OF_SAINT_AUGUSTINE",
	260: "SPELL_TREMORS_OF_SAINT_AUGUSTINE",
	261: "SPELL_TEMPEST_OF_SAINT_AUGUSTINE",
	262: "SPELL_STATUE",
	263: "SPELL_WATER_BLAST",
	264: "SPELL_DISPLACEMENT",
	265: "SPELL_GREATER_DISPLACEMENT",
	266: "SPELL_NIMBLE",
	267: "SPELL_CLARITY",
	401: "SKILL_BACKSTAB",
	402: "SKILL_BASH",
	403: "SKILL_HIDE",
	404: "SKILL_KICK",
	405: "SKILL_PICK_LOCK",
	406: "SKILL_PUNCH",
	407: "SKILL_RESCUE",
	408: "SKILL_SNEAK",
	409: "SKILL_STEAL",
	410: "SKILL_TRACK",
	411: "SKILL_DUAL_WIELD",
	412: "SKILL_DOUBLE_ATTACK",
	413: "SKILL_BERSERK",
	414: "SKILL_SPRINGLEAP",
	415: "SKILL_MOUNT",
	416: "SKILL_RIDING",
	417: "SKILL_TAME",
	418: "SKILL_THROATCUT",
	419: "SKILL_DOORBASH",
	420: "SKILL_PARRY",
	421: "SKILL_DODGE",
	422: "SKILL_RIPOSTE",
	423: "SKILL_MEDITATE",
	424: "SKILL_QUICK_CHANT",
	425: "SKILL_2BACK",
	426: "SKILL_CIRCLE",
	427: "SKILL_BODYSLAM",
	428: "SKILL_BIND",
	429: "SKILL_SHAPECHANGE",
	430: "SKILL_SWITCH",
	431: "SKILL_DISARM",
	432: "SKILL_DISARM_FUMBLING_WEAP",
	433: "SKILL_DISARM_DROPPED_WEAP",
	434: "SKILL_GUARD",
	435: "SKILL_BREATHE_LIGHTNING",
	436: "SKILL_SWEEP",
	437: "SKILL_ROAR",
	438: "SKILL_DOUSE",
	439: "SKILL_AWARE",
	440: "SKILL_INSTANT_KILL",
	441: "SKILL_HITALL",
	442: "SKILL_HUNT",
	443: "SKILL_BANDAGE",
	444: "SKILL_FIRST_AID",
	445: "SKILL_VAMP_TOUCH",
	446: "SKILL_CHANT",
	447: "SKILL_SCRIBE",
	448: "SKILL_SAFEFALL",
	449: "SKILL_BAREHAND",
	450: "SKILL_SUMMON_MOUNT",
	451: "SKILL_KNOW_SPELL",
	452: "SKILL_SPHERE_GENERIC",
	453: "SKILL_SPHERE_FIRE",
	454: "SKILL_SPHERE_WATER",
	455: "SKILL_SPHERE_EARTH",
	456: "SKILL_SPHERE_AIR",
	457: "SKILL_SPHERE_HEALING",
	458: "SKILL_SPHERE_PROT",
	459: "SKILL_SPHERE_ENCHANT",
	460: "SKILL_SPHERE_SUMMON",
	461: "SKILL_SPHERE_DEATH",
	462: "SKILL_SPHERE_DIVIN",
	463: "SKILL_BLUDGEONING",
	464: "SKILL_PIERCING",
	465: "SKILL_SLASHING",
	466: "SKILL_2H_BLUDGEONING",
	467: "SKILL_2H_PIERCING",
	468: "SKILL_2H_SLASHING",
	469: "SKILL_MISSILE",
	470: "SPELL_ON_FIRE",
	471: "SKILL_LAY_HANDS",
	472: "SKILL_EYE_GOUGE",
	473: "SKILL_RETREAT",
	474: "SKILL_GROUP_RETREAT",
	475: "SKILL_CORNER",
	476: "SKILL_STEALTH",
	477: "SKILL_SHADOW",
	478: "SKILL_CONCEAL",
	479: "SKILL_PECK",
	480: "SKILL_CLAW",
	481: "SKILL_ELECTRIFY",
	482: "SKILL_TANTRUM",
	483: "SKILL_GROUND_SHAKER",
	484: "SKILL_BATTLE_HOWL",
	485: "SKILL_MAUL",
	486: "SKILL_BREATHE_FIRE",
	487: "SKILL_BREATHE_FROST",
	488: "SKILL_BREATHE_ACID",
	489: "SKILL_BREATHE_GAS",
	490: "SKILL_PERFORM",
	491: "SKILL_CARTWHEEL",
	492: "SKILL_LURE",
	493: "SKILL_SNEAK_ATTACK",
	494: "SKILL_REND",
	495: "SKILL_ROUNDHOUSE",
	551: "SONG_INSPIRATION",
	552: "SONG_TERROR",
	553: "SONG_ENRAPTURE",
	554: "SONG_HEARTHSONG",
	555: "SONG_CROWN_OF_MADNESS",
	556: "SONG_SONG_OF_REST",
	557: "SONG_BALLAD_OF_TEARS",
	558: "SONG_HEROIC_JOURNEY",
	559: "SONG_FREEDOM_SONG",
	560: "SONG_JOYFUL_NOISE",
	601: "CHANT_REGENERATION",
	602: "CHANT_BATTLE_HYMN",
	603: "CHANT_WAR_CRY",
	604: "CHANT_PEACE",
	605: "CHANT_SHADOWS_SORROW_SONG",
	606: "CHANT_IVORY_SYMPHONY",
	607: "CHANT_ARIA_OF_DISSONANCE",
	608: "CHANT_SONATA_OF_MALAISE",
	609: "CHANT_APOCALYPTIC_ANTHEM",
	610: "CHANT_SEED_OF_DESTRUCTION",
	611: "CHANT_SPIRIT_WOLF",
	612: "CHANT_SPIRIT_BEAR",
	613: "CHANT_INTERMINABLE_WRATH",
	614: "CHANT_HYMN_OF_SAINT_AUGUSTINE",
	615: "CHANT_FIRES_OF_SAINT_AUGUSTINE",
	616: "CHANT_BLIZZARDS_OF_SAINT_AUGUSTINE",
	617: "CHANT_TREMORS_OF_SAINT_AUGUSTINE",
	618: "CHANT_TEMPEST_OF_SAINT_AUGUSTINE",
}
