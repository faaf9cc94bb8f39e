package catalog

// inventory is the HP-41 MCODE instruction table, after the one distributed
// with the HP-41 SDK (SDK41). Instructions that take an operand appear once,
// at the opcode of their zero operand. Peripheral instructions reuse opcodes
// of the CPU and are told apart by their operand type.
var inventory = []Record{
	// class 0, subclass 0
	{0x000, "NOP", OpNone1, AllDialects},
	{0x040, "WROM", OpNone1, HP | ZENCODE},
	{0x040, "WMLDL", OpNone1, JDA},
	{0x100, "ENROM1", OpNone1, HP | ZENCODE},
	{0x100, "ENBANK1", OpNone1, JDA},
	{0x180, "ENROM2", OpNone1, HP | ZENCODE},
	{0x180, "ENBANK2", OpNone1, JDA},
	{0x140, "ENROM3", OpNone1, HP | ZENCODE},
	{0x140, "ENBANK3", OpNone1, JDA},
	{0x1C0, "ENROM4", OpNone1, HP | ZENCODE},
	{0x1C0, "ENBANK4", OpNone1, JDA},

	// class 0, subclass 1: clear status bit
	{0x004, "CLRF", Op0To13Dec, HP},
	{0x004, "CF", Op0To13Dec, JDA},
	{0x384, "S0=", OpNone1, ZENCODE},
	{0x304, "S1=", OpNone1, ZENCODE},
	{0x204, "S2=", OpNone1, ZENCODE},
	{0x004, "S3=", OpNone1, ZENCODE},
	{0x044, "S4=", OpNone1, ZENCODE},
	{0x084, "S5=", OpNone1, ZENCODE},
	{0x144, "S6=", OpNone1, ZENCODE},
	{0x284, "S7=", OpNone1, ZENCODE},
	{0x104, "S8=", OpNone1, ZENCODE},
	{0x244, "S9=", OpNone1, ZENCODE},
	{0x0C4, "S10=", OpNone1, ZENCODE},
	{0x184, "S11=", OpNone1, ZENCODE},
	{0x344, "S12=", OpNone1, ZENCODE},
	{0x2C4, "S13=", OpNone1, ZENCODE},
	{0x3C4, "ST=0", OpNone1, HP | ZENCODE},
	{0x3C4, "CLRST", OpNone1, JDA},

	// class 0, subclass 2: set status bit
	{0x008, "SETF", Op0To13Dec, HP},
	{0x008, "SF", Op0To13Dec, JDA},
	{0x008, "ST=1", Op0To13Dec, ZENCODE},
	{0x388, "S0=", OpNone1, ZENCODE},
	{0x308, "S1=", OpNone1, ZENCODE},
	{0x208, "S2=", OpNone1, ZENCODE},
	{0x008, "S3=", OpNone1, ZENCODE},
	{0x048, "S4=", OpNone1, ZENCODE},
	{0x088, "S5=", OpNone1, ZENCODE},
	{0x148, "S6=", OpNone1, ZENCODE},
	{0x288, "S7=", OpNone1, ZENCODE},
	{0x108, "S8=", OpNone1, ZENCODE},
	{0x248, "S9=", OpNone1, ZENCODE},
	{0x0C8, "S10=", OpNone1, ZENCODE},
	{0x188, "S11=", OpNone1, ZENCODE},
	{0x348, "S12=", OpNone1, ZENCODE},
	{0x2C8, "S13=", OpNone1, ZENCODE},
	{0x3C8, "CLRKEY", OpNone1, HP | ZENCODE},
	{0x3C8, "RSTKB", OpNone1, JDA},

	// class 0, subclass 3: test status bit
	{0x00C, "?FSET", Op0To13Dec, HP},
	{0x00C, "?FS", Op0To13Dec, JDA},
	{0x00C, "ST=1?", Op0To13Dec, ZENCODE},
	{0x38C, "?S0=1", OpNone1, ZENCODE},
	{0x30C, "?S1=1", OpNone1, ZENCODE},
	{0x20C, "?S2=1", OpNone1, ZENCODE},
	{0x00C, "?S3=1", OpNone1, ZENCODE},
	{0x04C, "?S4=1", OpNone1, ZENCODE},
	{0x08C, "?S5=1", OpNone1, ZENCODE},
	{0x14C, "?S6=1", OpNone1, ZENCODE},
	{0x28C, "?S7=1", OpNone1, ZENCODE},
	{0x10C, "?S8=1", OpNone1, ZENCODE},
	{0x24C, "?S9=1", OpNone1, ZENCODE},
	{0x0CC, "?S10=1", OpNone1, ZENCODE},
	{0x18C, "?S11=1", OpNone1, ZENCODE},
	{0x34C, "?S12=1", OpNone1, ZENCODE},
	{0x2CC, "?S13=1", OpNone1, ZENCODE},
	{0x3CC, "?KEY", OpNone1, HP | ZENCODE},
	{0x3CC, "CHKKB", OpNone1, JDA},

	// class 0, subclass 4: load constant
	{0x010, "LC", Op0ToFHex, AllDialects},
	{0x010, "LC3", Op000ToFFFHex, ZENCODE},

	// class 0, subclass 5: test pointer
	{0x014, "?PT=", Op0To13Dec, HP},
	{0x014, "?R=", Op0To13Dec, JDA},
	{0x014, "PT=?", Op0To13Dec, ZENCODE},
	{0x3D4, "-PT", OpNone1, HP},
	{0x3D4, "R=R-1", OpNone1, JDA},
	{0x3D4, "DECPT", OpNone1, ZENCODE},

	// class 0, subclass 6: register transfers
	{0x058, "G=C", OpNone1, AllDialects},
	{0x098, "C=G", OpNone1, AllDialects},
	{0x0D8, "C<>G", OpNone1, HP | JDA},
	{0x0D8, "CGEX", OpNone1, ZENCODE},
	{0x158, "M=C", OpNone1, AllDialects},
	{0x198, "C=M", OpNone1, AllDialects},
	{0x1D8, "CMEX", OpNone1, HP},
	{0x1D8, "C<>M", OpNone1, JDA},
	{0x1D8, "M<>C", OpNone1, ZENCODE},
	{0x1D8, "MCEX", OpNone1, ZENCODE},
	{0x258, "F=SB", OpNone1, HP},
	{0x258, "T=ST", OpNone1, JDA},
	{0x258, "F=ST", OpNone1, ZENCODE},
	{0x298, "SB=F", OpNone1, HP},
	{0x298, "ST=T", OpNone1, JDA},
	{0x298, "ST=F", OpNone1, ZENCODE},
	{0x2D8, "FEXSB", OpNone1, HP},
	{0x2D8, "ST<>T", OpNone1, JDA},
	{0x2D8, "ST<>F", OpNone1, ZENCODE},
	{0x358, "ST=C", OpNone1, AllDialects},
	{0x398, "C=ST", OpNone1, AllDialects},
	{0x3D8, "CSTEX", OpNone1, HP | ZENCODE},
	{0x3D8, "C<>ST", OpNone1, JDA},

	// class 0, subclass 7: set pointer
	{0x01C, "PT=", Op0To13Dec, HP | ZENCODE},
	{0x01C, "R=", Op0To13Dec, JDA},
	{0x3DC, "+PT", OpNone1, HP},
	{0x3DC, "R=R+1", OpNone1, JDA},
	{0x3DC, "INCPT", OpNone1, ZENCODE},

	// class 0, subclass 8: miscellaneous
	{0x020, "SPOPND", OpNone1, HP | ZENCODE},
	{0x020, "XQ>GO", OpNone1, JDA},
	{0x060, "POWOFF", OpNone1, AllDialects},
	{0x0A0, "SELP", OpNone1, HP},
	{0x0A0, "SLCTP", OpNone1, JDA},
	{0x0A0, "PT=P", OpNone1, ZENCODE},
	{0x0E0, "SELQ", OpNone1, HP},
	{0x0E0, "SLCTQ", OpNone1, JDA},
	{0x0E0, "PT=Q", OpNone1, ZENCODE},
	{0x120, "?P=Q", OpNone1, HP | JDA},
	{0x120, "P=Q?", OpNone1, ZENCODE},
	{0x160, "?LOWBAT", OpNone1, HP},
	{0x160, "?BAT", OpNone1, JDA},
	{0x160, "?LLD", OpNone1, ZENCODE},
	{0x160, "LLD?", OpNone1, ZENCODE},
	{0x1A0, "CLRABC", OpNone1, HP},
	{0x1A0, "A=B=C=0", OpNone1, JDA},
	{0x1A0, "ABC=0", OpNone1, ZENCODE},
	{0x1E0, "GOTOC", OpNone1, HP},
	{0x1E0, "GTOC", OpNone1, JDA},
	{0x1E0, "GOTOADR", OpNone1, ZENCODE},
	{0x220, "C=KEYS", OpNone1, HP},
	{0x220, "C=KEY", OpNone1, JDA | ZENCODE},
	{0x260, "SETHEX", OpNone1, AllDialects},
	{0x2A0, "SETDEC", OpNone1, AllDialects},
	{0x2E0, "DISOFF", OpNone1, HP},
	{0x2E0, "DSPOFF", OpNone1, JDA | ZENCODE},
	{0x320, "DISTOG", OpNone1, HP},
	{0x320, "DSPTOG", OpNone1, JDA | ZENCODE},
	{0x360, "RTNC", OpNone1, HP},
	{0x360, "?CRTN", OpNone1, JDA},
	{0x360, "CRTN", OpNone1, ZENCODE},
	{0x3A0, "RTNNC", OpNone1, HP},
	{0x3A0, "?NCRTN", OpNone1, JDA},
	{0x3A0, "NCRTN", OpNone1, ZENCODE},
	{0x3E0, "RTN", OpNone1, AllDialects},

	// class 0, subclass 9: select peripheral
	{0x024, "SELPF", Op0ToFHex, HP | ZENCODE},
	{0x024, "PERTCT", Op0ToFHex, JDA},

	// class 0, subclass A: write register
	{0x028, "WRIT", Op0ToFHex, HP},
	{0x028, "REGN=C", Op0ToFHex, JDA},
	{0x028, "REG=C", Op0ToFHex, ZENCODE},
	{0x028, "HPIL=C", Op0To7, HP | ZENCODE},
	{0x028, "HPL=CH", Op0ToFHex, JDA},

	// class 0, subclass B: test peripheral flag
	{0x02C, "?FI=", Op0To13Dec, HP},
	{0x02C, "?PF", Op0To13Dec, JDA},
	{0x02C, "FLG=1?", Op0To13Dec, ZENCODE},
	{0x3AC, "?F0=1", OpNone1, ZENCODE},
	{0x32C, "?F1=1", OpNone1, ZENCODE},
	{0x22C, "?F2=1", OpNone1, ZENCODE},
	{0x02C, "?F3=1", OpNone1, ZENCODE},
	{0x06C, "?F4=1", OpNone1, ZENCODE},
	{0x0AC, "?F5=1", OpNone1, ZENCODE},
	{0x16C, "?F6=1", OpNone1, ZENCODE},
	{0x2AC, "?F7=1", OpNone1, ZENCODE},
	{0x12C, "?F8=1", OpNone1, ZENCODE},
	{0x26C, "?F9=1", OpNone1, ZENCODE},
	{0x0EC, "?F10=1", OpNone1, ZENCODE},
	{0x1AC, "?F11=1", OpNone1, ZENCODE},
	{0x36C, "?F12=1", OpNone1, ZENCODE},
	{0x2EC, "?F13=1", OpNone1, ZENCODE},

	// class 0, subclass C: miscellaneous
	{0x070, "N=C", OpNone1, AllDialects},
	{0x0B0, "C=N", OpNone1, AllDialects},
	{0x0F0, "CNEX", OpNone1, HP},
	{0x0F0, "C<>N", OpNone1, JDA},
	{0x0F0, "N<>C", OpNone1, ZENCODE},
	{0x0F0, "NCEX", OpNone1, ZENCODE},
	{0x130, "LDIS&X", Op000ToFFFHex, HP},
	{0x130, "LDI", Op000ToFFFHex, JDA | ZENCODE},
	{0x170, "PUSHADR", OpNone1, HP},
	{0x170, "STK=C", OpNone1, JDA | ZENCODE},
	{0x1B0, "POPADR", OpNone1, HP},
	{0x1B0, "C=STK", OpNone1, JDA | ZENCODE},
	{0x230, "GTOKEY", OpNone1, HP},
	{0x230, "GOKEYS", OpNone1, JDA | ZENCODE},
	{0x270, "RAMSLCT", OpNone1, HP},
	{0x270, "DADD=C", OpNone1, JDA | ZENCODE},
	{0x2F0, "WRITDATA", OpNone1, HP},
	{0x2F0, "DATA=C", OpNone1, JDA},
	{0x2F0, "WDATA", OpNone1, ZENCODE},
	{0x330, "FETCHS&X", OpNone1, HP},
	{0x330, "CXISA", OpNone1, JDA},
	{0x330, "RDROM", OpNone1, ZENCODE},
	{0x370, "C=CORA", OpNone1, HP},
	{0x370, "C=C!A", OpNone1, JDA | ZENCODE},
	{0x3B0, "C=CANDA", OpNone1, HP},
	{0x3B0, "C=C&A", OpNone1, JDA},
	{0x3B0, "C=C.A", OpNone1, ZENCODE},
	{0x3F0, "PRPHSLCT", OpNone1, HP},
	{0x3F0, "PFAD=C", OpNone1, JDA},
	{0x3F0, "PERSLCT", OpNone1, ZENCODE},

	// class 0, subclass D: load at pointer
	{0x034, "LD@R", Op0ToFHex, AllDialects},
	{0x034, "LD@R3", Op000To3FFHex, JDA},

	// class 0, subclass E: read register
	{0x038, "READDATA", OpNone1, HP},
	{0x038, "C=DATA", OpNone1, JDA},
	{0x038, "RDATA", OpNone1, ZENCODE},
	{0x038, "READ", Op0ToFHex, HP},
	{0x038, "C=REGN", Op0ToFHex, JDA},
	{0x038, "C=REG", Op0ToFHex, ZENCODE},

	// class 0, subclass F: rotate right
	{0x03C, "RCR", Op0To13Dec, AllDialects},

	// class 1: long jumps and subroutine calls
	{0x001, "?NCXQ", OpAddress1, HP},
	{0x001, "NCXQ", OpAddress1, JDA},
	{0x001, "GOSUB", OpAddress1, ZENCODE},
	{0x001, "GSUBNC", OpAddress1, ZENCODE},
	{0x001, "GSB41C", OpAddress1, ZENCODE},
	{0x001, "?CXQ", OpAddress2, HP},
	{0x001, "CXQ", OpAddress2, JDA},
	{0x001, "GSUBC", OpAddress2, ZENCODE},
	{0x001, "?NCGO", OpAddress3, HP},
	{0x001, "NCGO", OpAddress3, JDA},
	{0x001, "GOLNC", OpAddress3, ZENCODE},
	{0x001, "GOLONG", OpAddress3, ZENCODE},
	{0x001, "GOL41C", OpAddress3, ZENCODE},
	{0x001, "?CGO", OpAddress4, HP},
	{0x001, "CGO", OpAddress4, JDA},
	{0x001, "GOLC", OpAddress4, ZENCODE},
	{0x001, "?NCXQREL", OpAddress1, HP},
	{0x001, "NCXQREL", OpAddress1, JDA},
	{0x001, "?NCGOREL", OpAddress3, HP},
	{0x001, "NCGOREL", OpAddress3, JDA},

	// class 2: arithmetic on a field (TEF) of a register
	{0x002, "A=0", OpTEF1, AllDialects},
	{0x022, "B=0", OpTEF1, AllDialects},
	{0x042, "C=0", OpTEF1, AllDialects},
	{0x062, "A<>B", OpTEF1, HP | JDA},
	{0x062, "ABEX", OpTEF1, ZENCODE},
	{0x062, "B<>A", OpTEF2, ZENCODE},
	{0x062, "BAEX", OpTEF2, ZENCODE},
	{0x082, "B=A", OpTEF1, AllDialects},
	{0x082, "A=B", OpTEF2, ZENCODE},
	{0x0A2, "A<>C", OpTEF1, HP | JDA},
	{0x0A2, "ACEX", OpTEF1, ZENCODE},
	{0x0A2, "C<>A", OpTEF2, ZENCODE},
	{0x0A2, "CAEX", OpTEF2, ZENCODE},
	{0x0C2, "C=B", OpTEF1, AllDialects},
	{0x0C2, "B=C", OpTEF2, ZENCODE},
	{0x0E2, "B<>C", OpTEF1, HP | JDA},
	{0x0E2, "BCEX", OpTEF1, ZENCODE},
	{0x0E2, "C<>B", OpTEF2, ZENCODE},
	{0x0E2, "CBEX", OpTEF2, ZENCODE},
	{0x102, "A=C", OpTEF1, AllDialects},
	{0x102, "C=A", OpTEF2, ZENCODE},
	{0x122, "A=A+B", OpTEF1, AllDialects},
	{0x142, "A=A+C", OpTEF1, AllDialects},
	{0x162, "A=A+1", OpTEF1, AllDialects},
	{0x182, "A=A-B", OpTEF1, AllDialects},
	{0x1A2, "A=A-1", OpTEF1, AllDialects},
	{0x1C2, "A=A-C", OpTEF1, AllDialects},
	{0x1E2, "C=C+C", OpTEF1, AllDialects},
	{0x202, "C=A+C", OpTEF1, AllDialects},
	{0x202, "C=C+A", OpTEF2, ZENCODE},
	{0x222, "C=C+1", OpTEF1, AllDialects},
	{0x242, "C=A-C", OpTEF1, AllDialects},
	{0x262, "C=C-1", OpTEF1, AllDialects},
	{0x282, "C=0-C", OpTEF1, HP | ZENCODE},
	{0x282, "C=-C", OpTEF1, JDA},
	{0x2A2, "C=-C-1", OpTEF1, AllDialects},
	{0x2C2, "?B#0", OpTEF1, HP | JDA},
	{0x2C2, "B#0?", OpTEF1, ZENCODE},
	{0x2E2, "?C#0", OpTEF1, HP | JDA},
	{0x2E2, "C#0?", OpTEF1, ZENCODE},
	{0x302, "?A<C", OpTEF1, HP | JDA},
	{0x302, "A<C?", OpTEF1, ZENCODE},
	{0x322, "?A<B", OpTEF1, HP | JDA},
	{0x322, "A<B?", OpTEF1, ZENCODE},
	{0x342, "?A#0", OpTEF1, HP | JDA},
	{0x342, "A#0?", OpTEF1, ZENCODE},
	{0x362, "?A#C", OpTEF1, HP | JDA},
	{0x362, "A#C?", OpTEF1, ZENCODE},
	{0x382, "RSHFA", OpTEF1, HP | ZENCODE},
	{0x382, "ASR", OpTEF1, JDA},
	{0x3A2, "RSHFB", OpTEF1, HP | ZENCODE},
	{0x3A2, "BSR", OpTEF1, JDA},
	{0x3C2, "RSHFC", OpTEF1, HP | ZENCODE},
	{0x3C2, "CSR", OpTEF1, JDA},
	{0x3E2, "LSHFA", OpTEF1, HP | ZENCODE},
	{0x3E2, "ASL", OpTEF1, JDA},

	// class 3: short relative jumps
	{0x003, "JNC", OpDisplacement, HP | ZENCODE},
	{0x003, "GONC", OpDisplacement, JDA},
	{0x003, "GOTO", OpDisplacement, JDA},
	{0x007, "JC", OpDisplacement, HP | ZENCODE},
	{0x007, "GOC", OpDisplacement, JDA},

	// assembler pseudo operations
	{0x000, "CON", OpUnknown, AllDialects},
	{0x000, "XROM", Op1To31Dec, AllDialects},
	{0x000, "FCNS", Op0To64Dec, AllDialects},
	{0x000, "DEFR4K", OpAddress4, ZENCODE},
	{0x000, "DEFP4K", OpAddress4, ZENCODE},
	{0x000, "U4KDEF", OpAddress4, ZENCODE},

	// display driver (peripheral FD)
	{0x028, "SRLDA", OpNone2, HP},
	{0x028, "WRA12L", OpNone2, JDA},
	{0x068, "SRLDB", OpNone2, HP},
	{0x068, "WRB12L", OpNone2, JDA},
	{0x0A8, "SRLDC", OpNone2, HP},
	{0x0A8, "WRC12L", OpNone2, JDA},
	{0x0E8, "SRLDAB", OpNone2, HP},
	{0x0E8, "WRAB6L", OpNone2, JDA},
	{0x128, "SRLABC", OpNone2, HP},
	{0x128, "WRABC4L", OpNone2, JDA},
	{0x168, "SLLDAB", OpNone2, HP},
	{0x168, "WRAB6R", OpNone2, JDA},
	{0x1A8, "SLLABC", OpNone2, HP},
	{0x1A8, "WRABC4R", OpNone2, JDA},
	{0x1E8, "SRSDA", OpNone2, HP},
	{0x1E8, "WRA1L", OpNone2, JDA},
	{0x228, "SRSDB", OpNone2, HP},
	{0x228, "WRB1L", OpNone2, JDA},
	{0x268, "SRSDC", OpNone2, HP},
	{0x268, "WRC1L", OpNone2, JDA},
	{0x2A8, "SLSDA", OpNone2, HP},
	{0x2A8, "WRA1R", OpNone2, JDA},
	{0x2E8, "SLSDB", OpNone2, HP},
	{0x2E8, "WRB1R", OpNone2, JDA},
	{0x328, "SRSDAB", OpNone2, HP},
	{0x328, "WRAB1L", OpNone2, JDA},
	{0x368, "SLSDAB", OpNone2, HP},
	{0x368, "WRAB1R", OpNone2, JDA},
	{0x3A8, "SRSABC", OpNone2, HP},
	{0x3A8, "WRABC1L", OpNone2, JDA},
	{0x3E8, "SLSABC", OpNone2, HP},
	{0x3E8, "WRABC1R", OpNone2, JDA},
	{0x038, "FLLDA", OpNone2, HP},
	{0x038, "RDA12L", OpNone2, JDA},
	{0x078, "FLLDB", OpNone2, HP},
	{0x078, "RDB12L", OpNone2, JDA},
	{0x0B8, "FLLDC", OpNone2, HP},
	{0x0B8, "RDC12L", OpNone2, JDA},
	{0x0F8, "FLLDAB", OpNone2, HP},
	{0x0F8, "RDAB6L", OpNone2, JDA},
	{0x138, "FLLABC", OpNone2, HP},
	{0x138, "RDABC4L", OpNone2, JDA},
	{0x178, "READAN", OpNone2, HP},
	{0x178, "READEN", OpNone2, JDA},
	{0x1B8, "RDABC1L", OpNone2, JDA},
	{0x1B8, "RABCL", OpNone2, JDA},
	{0x1F8, "FLSDA", OpNone2, HP},
	{0x1F8, "RDA1L", OpNone2, JDA},
	{0x238, "FLSDB", OpNone2, HP},
	{0x238, "RDB1L", OpNone2, JDA},
	{0x278, "FLSDC", OpNone2, HP},
	{0x278, "RDC1L", OpNone2, JDA},
	{0x2B8, "FRSDA", OpNone2, HP},
	{0x2B8, "RDA1R", OpNone2, JDA},
	{0x2F8, "FRSDB", OpNone2, HP},
	{0x2F8, "RDB1R", OpNone2, JDA},
	{0x338, "FRSDC", OpNone2, HP},
	{0x338, "RDC1R", OpNone2, JDA},
	{0x378, "FLSDAB", OpNone2, HP},
	{0x378, "RDAB1L", OpNone2, JDA},
	{0x3B8, "FRSDAB", OpNone2, HP},
	{0x3B8, "RDAB1R", OpNone2, JDA},
	{0x3F8, "FRSABC", OpNone2, HP},
	{0x3F8, "RDABC1R", OpNone2, JDA},
	{0x3F8, "RABCR", OpNone2, JDA},
	{0x2F0, "WRITAN", OpNone2, HP},
	{0x2F0, "WRTEN", OpNone2, JDA},

	// timer (peripheral FB)
	{0x028, "WRTIME", OpNone3, HP},
	{0x028, "WTIME", OpNone3, JDA},
	{0x068, "WDTIME", OpNone3, HP},
	{0x068, "WTIME-", OpNone3, JDA},
	{0x0A8, "WRALM", OpNone3, HP},
	{0x0A8, "WALM", OpNone3, JDA},
	{0x0E8, "WRSTS", OpNone3, HP},
	{0x0E8, "WSTS", OpNone3, JDA},
	{0x128, "WRSCR", OpNone3, HP},
	{0x128, "WSCR", OpNone3, JDA},
	{0x168, "WSINT", OpNone3, HP},
	{0x168, "WINTST", OpNone3, JDA},
	{0x1E8, "STPINT", OpNone3, HP | JDA},
	{0x228, "DSWKUP", OpNone3, HP},
	{0x228, "WKUPOFF", OpNone3, JDA},
	{0x268, "ENWKUP", OpNone3, HP},
	{0x268, "WKUPON", OpNone3, JDA},
	{0x2A8, "DSALM", OpNone3, HP},
	{0x2A8, "ALMOFF", OpNone3, JDA},
	{0x2E8, "ENALM", OpNone3, HP},
	{0x2E8, "ALMON", OpNone3, JDA},
	{0x328, "STOPC", OpNone3, HP | JDA},
	{0x368, "STARTC", OpNone3, HP | JDA},
	{0x3A8, "TIMER=B", OpNone3, HP},
	{0x3A8, "PT=B", OpNone3, JDA},
	{0x3E8, "TIMER=A", OpNone3, HP},
	{0x3E8, "PT=A", OpNone3, JDA},
	{0x038, "RDTIME", OpNone3, HP},
	{0x038, "RTIME", OpNone3, JDA},
	{0x078, "RCTIME", OpNone3, HP},
	{0x078, "RTIMEST", OpNone3, JDA},
	{0x0B8, "RDALM", OpNone3, HP},
	{0x0B8, "RALM", OpNone3, JDA},
	{0x0F8, "RDSTS", OpNone3, HP},
	{0x0F8, "RSTS", OpNone3, JDA},
	{0x138, "RDSCR", OpNone3, HP},
	{0x138, "RSCR", OpNone3, JDA},
	{0x178, "RDINT", OpNone3, HP},
	{0x178, "RINT", OpNone3, JDA},
	{0x36C, "?ALM", OpNone3, JDA},
	{0x36C, "ALARM?", OpNone3, HP},

	// card reader (peripheral FC)
	{0x028, "ENWRIT", OpNone3, HP | JDA},
	{0x068, "STWRIT", OpNone3, HP | JDA},
	{0x0A8, "ENREAD", OpNone3, HP | JDA},
	{0x0E8, "STREAD", OpNone3, HP | JDA},
	{0x128, "CLRRTN", OpNone3, HP | JDA},
	{0x168, "CRDWPF", OpNone3, HP | JDA},
	{0x1E8, "CRDOHF", OpNone3, HP | JDA},
	{0x268, "CRDINF", OpNone3, HP | JDA},
	{0x2E8, "TSTBUF", OpNone3, HP | JDA},
	{0x328, "TRPCRD", OpNone3, HP | JDA},
	{0x368, "TCLCRD", OpNone3, HP | JDA},
	{0x3E8, "CRDFLG", OpNone3, HP | JDA},
	{0x038, "CRDEXF", OpNone3, HP | JDA},
	{0x0B8, "ENDREAD", OpNone3, HP | JDA},
	{0x0F8, "ENDWRIT", OpNone3, HP | JDA},
	{0x2A8, "SETCTF", OpNone3, HP | JDA},
	{0x3A8, "TCLCTF", OpNone3, HP | JDA},
	{0x06C, "?CRDR", OpNone3, HP | JDA},

	// printer, wand and HP-IL flags
	{0x028, "PRINT", OpNone3, HP | JDA},
	{0x0F8, "STATUS", OpNone3, HP | JDA},
	{0x3E0, "RTNCPU", OpNone3, HP | JDA},
	{0x02C, "?PBSY", OpNone3, HP},
	{0x02C, "BUSY?", OpNone3, JDA},
	{0x12C, "?EDAV", OpNone3, HP | JDA},
	{0x0AC, "?WNDB", OpNone3, HP | JDA},
	{0x16C, "?ORAV", OpNone3, HP},
	{0x16C, "ORAV?", OpNone3, JDA},
	{0x1AC, "?FRAV", OpNone3, HP},
	{0x1AC, "FRAV?", OpNone3, JDA},
	{0x22C, "?IFCR", OpNone3, HP},
	{0x22C, "IFCR?", OpNone3, JDA},
	{0x26C, "?TFAIL", OpNone3, HP},
	{0x26C, "ERROR?", OpNone3, JDA},
	{0x2AC, "?SRQR", OpNone3, HP},
	{0x2AC, "SRQR?", OpNone3, JDA},
	{0x2EC, "?FRNS", OpNone3, HP},
	{0x2EC, "FRNS?", OpNone3, JDA},
	{0x32C, "?SERV", OpNone3, HP | JDA},
	{0x32C, "POWON?", OpNone3, JDA},
}
