//go:build linux

package fsmeta

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
)

const capsSupported = true

// VFS capability data revisions, from the magic_etc header word.
const (
	vfsCapRevisionMask = 0xFF000000
	vfsCapRevision1    = 0x01000000
	vfsCapRevision2    = 0x02000000
	vfsCapRevision3    = 0x03000000
)

// capNames maps capability bit numbers to their canonical lowercase names,
// matching the ordering in linux/capability.h.
var capNames = []string{
	"cap_chown", "cap_dac_override", "cap_dac_read_search", "cap_fowner",
	"cap_fsetid", "cap_kill", "cap_setgid", "cap_setuid", "cap_setpcap",
	"cap_linux_immutable", "cap_net_bind_service", "cap_net_broadcast",
	"cap_net_admin", "cap_net_raw", "cap_ipc_lock", "cap_ipc_owner",
	"cap_sys_module", "cap_sys_rawio", "cap_sys_chroot", "cap_sys_ptrace",
	"cap_sys_pacct", "cap_sys_admin", "cap_sys_boot", "cap_sys_nice",
	"cap_sys_resource", "cap_sys_time", "cap_sys_tty_config", "cap_mknod",
	"cap_lease", "cap_audit_write", "cap_audit_control", "cap_setfcap",
	"cap_mac_override", "cap_mac_admin", "cap_syslog", "cap_wake_alarm",
	"cap_block_suspend", "cap_audit_read", "cap_perfmon", "cap_bpf",
	"cap_checkpoint_restore",
}

// readCaps reads and decodes the security.capability xattr. Any read failure
// (no xattr support, no permission to read the attribute) degrades to an
// empty set; the platform itself still supports the query.
func readCaps(path string) CapabilitySet {
	buf := make([]byte, 64)
	n, err := unix.Lgetxattr(path, "security.capability", buf)
	if err != nil || n < 8 {
		return CapabilitySet{Supported: true}
	}
	names, err := decodeVFSCaps(buf[:n])
	if err != nil {
		return CapabilitySet{Supported: true}
	}
	return CapabilitySet{Supported: true, Names: names}
}

// decodeVFSCaps parses a struct vfs_cap_data blob into capability names for
// the permitted set. Layout: a little-endian magic_etc word followed by one
// (v1) or two (v2/v3) {permitted, inheritable} u32 pairs.
func decodeVFSCaps(b []byte) ([]string, error) {
	magic := binary.LittleEndian.Uint32(b[:4]) & vfsCapRevisionMask
	var permitted uint64
	switch magic {
	case vfsCapRevision1:
		if len(b) < 12 {
			return nil, fmt.Errorf("short v1 capability data: %d bytes", len(b))
		}
		permitted = uint64(binary.LittleEndian.Uint32(b[4:8]))
	case vfsCapRevision2, vfsCapRevision3:
		if len(b) < 20 {
			return nil, fmt.Errorf("short v2/v3 capability data: %d bytes", len(b))
		}
		lo := uint64(binary.LittleEndian.Uint32(b[4:8]))
		hi := uint64(binary.LittleEndian.Uint32(b[12:16]))
		permitted = hi<<32 | lo
	default:
		return nil, fmt.Errorf("unknown capability revision %#x", magic)
	}
	var names []string
	for bit := 0; bit < 64; bit++ {
		if permitted&(1<<bit) == 0 {
			continue
		}
		if bit < len(capNames) {
			names = append(names, capNames[bit])
		} else {
			names = append(names, fmt.Sprintf("cap_%d", bit))
		}
	}
	return names, nil
}
